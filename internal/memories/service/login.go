package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/internal/memories/metrics"
	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"github.com/aussiebroadwan/memorylane/pkg/attempts"
	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/idx"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

// anonymousClientKey groups requests for which the transport could not
// determine a client.
const anonymousClientKey = "anonymous"

type LoginInput struct {
	Email     string
	Password  string
	ClientKey string
}

// NewLoginInput decodes a {"email","password"} body.
func NewLoginInput(rc httpx.RequestContext) (LoginInput, error) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := rc.DecodeBody(&body); err != nil {
		return LoginInput{}, err
	}
	return LoginInput{Email: body.Email, Password: body.Password, ClientKey: rc.ClientKey}, nil
}

type LoginResult struct {
	Token     string
	Identity  jwtx.Identity
	TTL       time.Duration
	ExpiresAt time.Time
}

// LoginService turns credentials into a signed session token.
type LoginService struct {
	Store   store.Store
	Issuer  *jwtx.Issuer
	Limiter attempts.Limiter
	Pool    *cryptox.VerifyPool

	// Hasher builds the throwaway hash that unknown emails are verified
	// against. It should match the scheme of the stored hashes; nil means
	// argon2id with its default work factor.
	Hasher *cryptox.PasswordHasher

	// Fallback is the demonstration allow-list. Empty disables it.
	Fallback []FallbackAccount

	// Metrics is optional.
	Metrics *metrics.Metrics

	// Now defaults to time.Now.
	Now func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func (s *LoginService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *LoginService) record(path, outcome string) {
	if s.Metrics != nil {
		s.Metrics.RecordLogin(path, outcome)
	}
}

// Login checks the limiter first, so every attempt counts, including ones
// with empty fields. A stored identity never falls through to the allow-list.
func (s *LoginService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	l := slogx.FromContext(ctx)

	key := in.ClientKey
	if key == "" {
		key = anonymousClientKey
	}

	decision, err := s.Limiter.Hit(ctx, key)
	if err != nil {
		s.record(metrics.PathNone, metrics.OutcomeError)
		return nil, fmt.Errorf("login limiter: %w", err)
	}
	if !decision.Allowed {
		l.Warn("login rate limited", "client", key, "count", decision.Count, "retry_after", decision.RetryAfter)
		s.record(metrics.PathNone, metrics.OutcomeRateLimited)
		return nil, &RateLimitedError{RetryAfter: decision.RetryAfter}
	}

	if in.Email == "" || in.Password == "" {
		s.record(metrics.PathNone, metrics.OutcomeMissing)
		return nil, ErrMissingCredentials
	}

	username := domain.NormalizeUsername(in.Email)
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return s.loginPrimary(ctx, user, in.Password)
	case errors.Is(err, store.ErrNotFound):
		return s.loginFallback(ctx, username, in.Password)
	default:
		l.Error("login: user lookup failed", "error", err)
		s.record(metrics.PathPrimary, metrics.OutcomeError)
		return nil, fmt.Errorf("login: lookup: %w", err)
	}
}

func (s *LoginService) loginPrimary(ctx context.Context, user domain.User, password string) (*LoginResult, error) {
	l := slogx.FromContext(ctx).With("user_id", user.ID)

	ok, err := s.Pool.Verify(ctx, password, user.PasswordHash)
	switch {
	case errors.Is(err, cryptox.ErrMalformedHash):
		l.Error("login: stored password hash is malformed", "error", err)
		s.record(metrics.PathPrimary, metrics.OutcomeInvalid)
		return nil, ErrInvalidCredentials
	case err != nil:
		s.record(metrics.PathPrimary, metrics.OutcomeError)
		return nil, fmt.Errorf("login: verify: %w", err)
	}

	if !ok || !user.IsActive {
		if ok {
			l.Warn("login: inactive account")
		}
		s.record(metrics.PathPrimary, metrics.OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	email := user.Email
	if email == "" {
		email = user.Username
	}
	res, err := s.issue(jwtx.Identity{
		SubjectID: user.ID,
		Role:      user.Role.String(),
		Email:     email,
		Name:      user.Name,
		Trust:     jwtx.TrustVerified,
	})
	if err != nil {
		l.Error("login: issue token", "error", err)
		s.record(metrics.PathPrimary, metrics.OutcomeError)
		return nil, err
	}

	if err := s.Store.Users().TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		l.Warn("login: failed to record last login", "error", err)
	}

	l.Info("login succeeded", "trust", jwtx.TrustVerified)
	s.record(metrics.PathPrimary, metrics.OutcomeSuccess)
	return res, nil
}

func (s *LoginService) loginFallback(ctx context.Context, email, password string) (*LoginResult, error) {
	l := slogx.FromContext(ctx)

	acc, ok := matchFallback(s.Fallback, email, password)
	if !ok {
		s.equalizeTiming(ctx, password)
		s.record(metrics.PathNone, metrics.OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	res, err := s.issue(jwtx.Identity{
		SubjectID: idx.WithPrefix("basic_"),
		Role:      acc.Role.String(),
		Email:     domain.NormalizeUsername(acc.Email),
		Name:      acc.Name,
		Trust:     jwtx.TrustBasic,
	})
	if err != nil {
		l.Error("login: issue token", "error", err)
		s.record(metrics.PathFallback, metrics.OutcomeError)
		return nil, err
	}

	l.Info("login succeeded", "trust", jwtx.TrustBasic, "user_id", res.Identity.SubjectID)
	s.record(metrics.PathFallback, metrics.OutcomeSuccess)
	return res, nil
}

func (s *LoginService) issue(id jwtx.Identity) (*LoginResult, error) {
	token, claims, err := s.Issuer.Issue(id)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		Identity:  claims.Identity(),
		TTL:       claims.ExpiresAt.Sub(claims.IssuedAt.Time),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// equalizeTiming runs one verification against a throwaway hash built with
// the configured scheme, so unknown emails cost about as much as known ones.
func (s *LoginService) equalizeTiming(ctx context.Context, password string) {
	s.dummyOnce.Do(func() {
		secret, err := cryptox.GeneratePassword()
		if err != nil {
			return
		}
		if s.Hasher != nil {
			s.dummyHash, _ = s.Hasher.Hash(secret)
			return
		}
		s.dummyHash, _ = cryptox.HashPassword(secret, cryptox.SchemeArgon2id, 0)
	})
	if s.dummyHash == "" {
		return
	}
	_, _ = s.Pool.Verify(ctx, password, s.dummyHash)
}
