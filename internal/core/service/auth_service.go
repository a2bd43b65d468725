package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pixelforge/agency-api/internal/api/metrics"
	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

const verificationTTL = 24 * time.Hour

// AuthService implements registration, login, email verification and
// federated sign-in.
type AuthService struct {
	users    ports.UserRepository
	verifier ports.IdentityVerifier
	mailer   ports.Mailer
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	verifier ports.IdentityVerifier,
	mailer ports.Mailer,
	notifier ports.Notifier,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, verifier: verifier, mailer: mailer, notifier: notifier, log: log}
}

// Register creates a local, unverified client account and issues a
// verification token. Mail delivery is best-effort.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := randomToken()
	expiry := time.Now().UTC().Add(verificationTTL)
	now := time.Now().UTC()
	user := &domain.User{
		Username:           input.Username,
		Email:              input.Email,
		PasswordHash:       string(hash),
		DisplayName:        input.DisplayName,
		Role:               domain.RoleClient,
		Company:            input.Company,
		Verified:           false,
		VerificationToken:  token,
		VerificationExpiry: &expiry,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerification(ctx, created.Email, token); err != nil {
		s.log.Warn().Err(err).Str("email", created.Email).Msg("verification mail failed")
	}
	s.notifier.Notify(ctx, created.ID,
		"Welcome to Pixelforge",
		"Confirm your email address to activate your account.",
		domain.NotificationInfo, "")

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates by username or email. Unverified local accounts are
// rejected with a distinct error so the UI can prompt for confirmation.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*domain.User, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, usernameOrEmail)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.FindByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		// Federated-only account; no password to check against.
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Verified {
		return nil, domain.ErrEmailNotVerified
	}

	metrics.LoginsTotal.WithLabelValues("password").Inc()
	return user, nil
}

// VerifyEmail confirms the address behind a verification token and clears it.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if user.VerificationExpiry == nil || time.Now().UTC().After(*user.VerificationExpiry) {
		return nil, domain.ErrInvalidToken
	}

	user.Verified = true
	user.VerificationToken = ""
	user.VerificationExpiry = nil
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("email verified")
	return user, nil
}

// ResendVerification reissues a token for an unverified account. Verified and
// unknown addresses succeed silently so the endpoint cannot be used to probe
// which emails are registered.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if user.Verified {
		return nil
	}

	token := randomToken()
	expiry := time.Now().UTC().Add(verificationTTL)
	user.VerificationToken = token
	user.VerificationExpiry = &expiry
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.SendVerification(ctx, user.Email, token); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("verification mail failed")
	}
	return nil
}

// FederatedLogin exchanges an external ID token for a local account. On first
// sight of an external uid the account is linked by email when one exists
// (forcing it verified — the provider already confirmed the address) or
// created with a uniquified username derived from the email local-part.
func (s *AuthService) FederatedLogin(ctx context.Context, idToken string) (*domain.User, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("federated login: %w", err)
	}

	user, err := s.users.FindByExternalUID(ctx, identity.UID)
	if err == nil {
		metrics.LoginsTotal.WithLabelValues("federated").Inc()
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	// Link to an existing local account with the same email.
	user, err = s.users.FindByEmail(ctx, identity.Email)
	if err == nil {
		user.ExternalUID = identity.UID
		user.Verified = true
		user.VerificationToken = ""
		user.VerificationExpiry = nil
		user.UpdatedAt = time.Now().UTC()
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
		s.log.Info().Str("user_id", user.ID).Msg("federated identity linked")
		metrics.LoginsTotal.WithLabelValues("federated").Inc()
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	username, err := s.uniqueUsername(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:    username,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Role:        domain.RoleClient,
		ExternalUID: identity.UID,
		Verified:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, created.ID,
		"Welcome to Pixelforge",
		"Your account is ready.",
		domain.NotificationInfo, "")
	s.log.Info().Str("user_id", created.ID).Str("username", username).Msg("federated user created")
	metrics.LoginsTotal.WithLabelValues("federated").Inc()
	return created, nil
}

// CreateClient provisions a client account from the admin area. The account
// is pre-verified; the client is expected to change the initial password.
func (s *AuthService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		DisplayName:  input.DisplayName,
		Role:         domain.RoleClient,
		Company:      input.Company,
		Verified:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) ListClients(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleClient)
}

// uniqueUsername derives a username from the email local-part, appending a
// numeric suffix until it is free.
func (s *AuthService) uniqueUsername(ctx context.Context, email string) (string, error) {
	base := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		base = email[:at]
	}
	base = strings.ToLower(base)

	candidate := base
	for i := 1; ; i++ {
		_, err := s.users.FindByUsername(ctx, candidate)
		if errors.Is(err, domain.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

// randomToken returns a 32-hex-char token for email verification links.
func randomToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
