package service

// In-memory stubs shared by the service tests. They mirror the filter and
// error behaviour of the real Mongo/Redis adapters closely enough for the
// business rules to be exercised without a database.

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	nextID    int
	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user_%d", r.nextID)
	clone := *user
	r.byID[user.ID] = &clone
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *stubUserRepo) FindByExternalUID(_ context.Context, uid string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ExternalUID != "" && u.ExternalUID == uid })
}

func (r *stubUserRepo) FindByVerificationToken(_ context.Context, token string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.VerificationToken != "" && u.VerificationToken == token })
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for i := 1; i <= r.nextID; i++ {
		if u, ok := r.byID[fmt.Sprintf("user_%d", i)]; ok && u.Role == role {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	for _, u := range r.byID {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// seedUser stores a user directly, bypassing Create side effects.
func (r *stubUserRepo) seed(u *domain.User) *domain.User {
	r.nextID++
	if u.ID == "" {
		u.ID = fmt.Sprintf("user_%d", r.nextID)
	}
	clone := *u
	r.byID[u.ID] = &clone
	return u
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

type stubProjectRepo struct {
	byID            map[string]*domain.Project
	order           []string
	nextID          int
	createErr       error
	updateStatusErr error
	statusUpdates   []string // "id:status" per UpdateStatus call
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	p.ID = fmt.Sprintf("project_%d", r.nextID)
	clone := *p
	r.byID[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok && p.OwnerID == ownerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) ListAll(_ context.Context) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) UpdateStatus(_ context.Context, id string, status domain.ProjectStatus) error {
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	r.statusUpdates = append(r.statusUpdates, id+":"+string(status))
	return nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, patch ports.ProjectPatch) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.Metadata != nil {
		p.Metadata = *patch.Metadata
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProjectRepo) seed(p *domain.Project) *domain.Project {
	r.nextID++
	if p.ID == "" {
		p.ID = fmt.Sprintf("project_%d", r.nextID)
	}
	clone := *p
	r.byID[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return p
}

// ---------------------------------------------------------------------------
// Milestones
// ---------------------------------------------------------------------------

type stubMilestoneRepo struct {
	byID           map[string]*domain.Milestone
	nextID         int
	deletedProject string
}

func newStubMilestoneRepo() *stubMilestoneRepo {
	return &stubMilestoneRepo{byID: make(map[string]*domain.Milestone)}
}

func (r *stubMilestoneRepo) Create(_ context.Context, m *domain.Milestone) (*domain.Milestone, error) {
	r.nextID++
	m.ID = fmt.Sprintf("milestone_%d", r.nextID)
	clone := *m
	r.byID[m.ID] = &clone
	return m, nil
}

func (r *stubMilestoneRepo) FindByID(_ context.Context, id string) (*domain.Milestone, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMilestoneNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMilestoneRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Milestone, error) {
	var out []*domain.Milestone
	for i := 1; i <= r.nextID; i++ {
		if m, ok := r.byID[fmt.Sprintf("milestone_%d", i)]; ok && m.ProjectID == projectID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMilestoneRepo) UpdateStatus(_ context.Context, id string, status domain.MilestoneStatus, completedAt *time.Time) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMilestoneNotFound
	}
	m.Status = status
	m.CompletedAt = completedAt
	return nil
}

func (r *stubMilestoneRepo) DeleteByProject(_ context.Context, projectID string) error {
	r.deletedProject = projectID
	for id, m := range r.byID {
		if m.ProjectID == projectID {
			delete(r.byID, id)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Files
// ---------------------------------------------------------------------------

type stubFileRepo struct {
	byID           map[string]*domain.ProjectFile
	nextID         int
	deletedProject string
}

func newStubFileRepo() *stubFileRepo {
	return &stubFileRepo{byID: make(map[string]*domain.ProjectFile)}
}

func (r *stubFileRepo) Create(_ context.Context, f *domain.ProjectFile) (*domain.ProjectFile, error) {
	r.nextID++
	f.ID = fmt.Sprintf("file_%d", r.nextID)
	clone := *f
	r.byID[f.ID] = &clone
	return f, nil
}

func (r *stubFileRepo) FindByID(_ context.Context, id string) (*domain.ProjectFile, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFileRepo) ListByProject(_ context.Context, projectID string) ([]*domain.ProjectFile, error) {
	var out []*domain.ProjectFile
	for i := 1; i <= r.nextID; i++ {
		if f, ok := r.byID[fmt.Sprintf("file_%d", i)]; ok && f.ProjectID == projectID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubFileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubFileRepo) DeleteByProject(_ context.Context, projectID string) error {
	r.deletedProject = projectID
	for id, f := range r.byID {
		if f.ProjectID == projectID {
			delete(r.byID, id)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type stubNotificationRepo struct {
	rows      []*domain.Notification
	nextID    int
	createErr error
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	n.ID = fmt.Sprintf("notification_%d", r.nextID)
	clone := *n
	r.rows = append(r.rows, &clone)
	return n, nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	// newest first, mirroring the Mongo sort
	var out []*domain.Notification
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID {
			clone := *r.rows[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, row := range r.rows {
		if row.UserID == userID && !row.Read {
			n++
		}
	}
	return n, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, userID, id string) error {
	for _, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			row.Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, row := range r.rows {
		if row.UserID == userID {
			row.Read = true
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// View cache fake
// ---------------------------------------------------------------------------

// fakeViewCache is a real in-memory cache that also records invalidations, so
// tests can assert both views were dropped together.
type fakeViewCache struct {
	owner         map[string][]byte
	admin         []byte
	invalidations []string // ownerID per Invalidate call
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{owner: make(map[string][]byte)}
}

func (f *fakeViewCache) GetOwner(_ context.Context, ownerID string) ([]byte, bool) {
	payload, ok := f.owner[ownerID]
	return payload, ok
}

func (f *fakeViewCache) GetAdmin(_ context.Context) ([]byte, bool) {
	if f.admin == nil {
		return nil, false
	}
	return f.admin, true
}

func (f *fakeViewCache) SetOwner(_ context.Context, ownerID string, payload []byte) {
	f.owner[ownerID] = payload
}

func (f *fakeViewCache) SetAdmin(_ context.Context, payload []byte) {
	f.admin = payload
}

func (f *fakeViewCache) Invalidate(_ context.Context, ownerID string) {
	f.invalidations = append(f.invalidations, ownerID)
	f.admin = nil
	if ownerID != "" {
		delete(f.owner, ownerID)
	}
}

// ---------------------------------------------------------------------------
// Notifier recorder
// ---------------------------------------------------------------------------

type sentNotification struct {
	UserID  string
	Title   string
	Message string
	Type    string
	Link    string
}

type notifierRecorder struct {
	sent      []sentNotification
	adminSent []sentNotification
}

func (n *notifierRecorder) Notify(_ context.Context, userID, title, message, ntype, link string) {
	n.sent = append(n.sent, sentNotification{userID, title, message, ntype, link})
}

func (n *notifierRecorder) NotifyAdmins(_ context.Context, title, message, ntype, link string) {
	n.adminSent = append(n.adminSent, sentNotification{"", title, message, ntype, link})
}

// ---------------------------------------------------------------------------
// External collaborators
// ---------------------------------------------------------------------------

type stubVerifier struct {
	identity *ports.ExternalIdentity
	err      error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*ports.ExternalIdentity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}

type stubMailer struct {
	sentTo     []string
	sentTokens []string
	err        error
}

func (m *stubMailer) SendVerification(_ context.Context, email, token string) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = append(m.sentTo, email)
	m.sentTokens = append(m.sentTokens, token)
	return nil
}

type stubCompleter struct {
	reply string
	err   error
}

func (c *stubCompleter) Complete(_ context.Context, _ []*domain.ChatMessage) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

// ---------------------------------------------------------------------------
// Chat
// ---------------------------------------------------------------------------

type stubChatRepo struct {
	sessions map[string]*domain.ChatSession
	messages []*domain.ChatMessage
	nextID   int
}

func newStubChatRepo() *stubChatRepo {
	return &stubChatRepo{sessions: make(map[string]*domain.ChatSession)}
}

func (r *stubChatRepo) CreateSession(_ context.Context, s *domain.ChatSession) (*domain.ChatSession, error) {
	r.nextID++
	s.ID = fmt.Sprintf("chat_%d", r.nextID)
	clone := *s
	r.sessions[s.ID] = &clone
	return s, nil
}

func (r *stubChatRepo) FindSession(_ context.Context, id string) (*domain.ChatSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubChatRepo) AppendMessage(_ context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	r.nextID++
	m.ID = fmt.Sprintf("msg_%d", r.nextID)
	clone := *m
	r.messages = append(r.messages, &clone)
	return m, nil
}

func (r *stubChatRepo) ListMessages(_ context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	var out []*domain.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}
