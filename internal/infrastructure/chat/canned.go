package chat

import (
	"context"
	"strings"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// CannedCompleter answers visitor messages from a small keyword table. It
// stands in for the hosted completion backend in development and acts as the
// hard fallback when no backend is configured.
type CannedCompleter struct{}

func NewCannedCompleter() *CannedCompleter {
	return &CannedCompleter{}
}

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"price", "pricing", "cost", "quote", "budget"},
		reply:    "Pricing depends on scope. Submit the contact form with a short project description and we will send you a quote within two business days.",
	},
	{
		keywords: []string{"portfolio", "work", "example", "reference"},
		reply:    "You can browse our recent work on the portfolio page. Most projects there include a short case study.",
	},
	{
		keywords: []string{"timeline", "how long", "duration", "deadline"},
		reply:    "A typical website project takes four to eight weeks from kickoff. Larger builds are planned milestone by milestone in your dashboard.",
	},
	{
		keywords: []string{"contact", "call", "email", "reach"},
		reply:    "The fastest way to reach us is the contact form. We reply to every message within one business day.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hi! Ask me anything about our services, pricing or timelines.",
	},
}

const cannedDefault = "Thanks for your message! For anything specific to your project, the contact form is the best place to start and we will get back to you quickly."

// Complete picks a reply based on the latest user turn.
func (c *CannedCompleter) Complete(ctx context.Context, history []*domain.ChatMessage) (string, error) {
	var last string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.ChatRoleUser {
			last = strings.ToLower(history[i].Content)
			break
		}
	}

	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(last, kw) {
				return c.reply, nil
			}
		}
	}
	return cannedDefault, nil
}
