// Package auth gates the admin area behind a credential check with a
// timed lockout after repeated failures.
//
// This is a UX deterrent, not a security control: the expected
// credentials live in the service's own config, the comparison happens
// inside this process, and nothing here withstands an attacker who can
// read the deployment. Real access control needs an identity boundary
// in front of this service.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/msadmin/core/internal/config"
	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/modules/activity"
	"github.com/msadmin/core/internal/pkg/jwt"
	"github.com/msadmin/core/internal/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrBusy rejects a login attempt while another check is in flight.
var ErrBusy = errors.New("a login attempt is already in progress")

// LockedError rejects attempts while the lockout window is open. A
// locked rejection never consumes an attempt.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("login locked until %s", e.Until.Format(time.RFC3339))
}

// CredentialsError reports a failed attempt and how many remain before
// the gate locks.
type CredentialsError struct {
	Remaining int
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials, %d attempts remaining", e.Remaining)
}

// Service runs the login state machine: idle → checking →
// {authenticated | error | locked}. The lockout record persists in the
// store so it survives restarts; sessions are the signed token itself.
type Service struct {
	store  *store.Store
	audit  *activity.Service
	signer *jwt.Signer
	admin  config.AdminConfig
	logger *zap.Logger

	maxAttempts int
	window      time.Duration
	// failDelay is the artificial pause before a failure result, the
	// same latency the admin UI has always shown on a bad login.
	failDelay time.Duration

	now func() time.Time
	mu  sync.Mutex
}

func NewService(st *store.Store, audit *activity.Service, signer *jwt.Signer, admin config.AdminConfig, lockout config.LockoutConfig, logger *zap.Logger) *Service {
	return &Service{
		store:       st,
		audit:       audit,
		signer:      signer,
		admin:       admin,
		logger:      logger,
		maxAttempts: lockout.MaxAttempts,
		window:      time.Duration(lockout.WindowMinutes) * time.Minute,
		failDelay:   time.Second,
		now:         time.Now,
	}
}

// SetClock overrides the time source and disables the artificial
// failure delay (tests only).
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.failDelay = 0
}

// Login checks the supplied credentials. On success it clears the
// failure counter and returns a signed session token; on failure it
// advances the lockout state machine.
func (s *Service) Login(email, password string) (string, models.User, error) {
	if !s.mu.TryLock() {
		return "", models.User{}, ErrBusy
	}
	defer s.mu.Unlock()

	token, user, delay, err := s.attempt(email, password)
	if delay {
		// The deterrent pause runs after the store lock is released so
		// a failed login never stalls unrelated writes.
		time.Sleep(s.failDelay)
	}
	return token, user, err
}

// attempt runs one credential check under the store lock. delay is set
// when an attempt was consumed, i.e. for every failure except an
// immediate locked rejection.
func (s *Service) attempt(email, password string) (token string, user models.User, delay bool, err error) {
	s.store.Lock()
	defer s.store.Unlock()

	state := models.LockoutState{}
	s.store.Get(store.KeyLockout, &state)

	now := s.now()
	if until, ok := lockoutDeadline(state); ok {
		if now.Before(until) {
			return "", models.User{}, false, &LockedError{Until: until}
		}
		// Window elapsed: the gate reverts to idle with a fresh
		// counter.
		state = models.LockoutState{}
	}

	if !s.credentialsMatch(email, password) {
		state.FailedAttempts++
		if state.FailedAttempts >= s.maxAttempts {
			until := now.Add(s.window)
			state.LockoutUntil = until.UTC().Format(time.RFC3339)
			if err := s.store.Save(store.KeyLockout, state); err != nil {
				s.logger.Error("lockout state write failed", zap.Error(err))
			}
			return "", models.User{}, true, &LockedError{Until: until}
		}
		if err := s.store.Save(store.KeyLockout, state); err != nil {
			s.logger.Error("lockout state write failed", zap.Error(err))
		}
		return "", models.User{}, true, &CredentialsError{Remaining: s.maxAttempts - state.FailedAttempts}
	}

	if err := s.store.Save(store.KeyLockout, models.LockoutState{}); err != nil {
		s.logger.Error("lockout state reset failed", zap.Error(err))
	}

	user = models.User{Email: s.admin.Email, Name: s.admin.Name, Role: "admin"}
	token, err = s.signer.Sign(user)
	if err != nil {
		return "", models.User{}, false, fmt.Errorf("sign session: %w", err)
	}
	if err := s.audit.AppendLocked(models.ActionLogin, "USER", user.Name, user.Name); err != nil {
		s.logger.Warn("login audit entry lost", zap.Error(err))
	}
	return token, user, false, nil
}

// Logout records the end of a session. Tokens are stateless, so the
// client discarding the token is the actual logout.
func (s *Service) Logout(user models.User) {
	if err := s.audit.Append(models.ActionSystem, "USER", user.Name+" logged out", user.Name); err != nil {
		s.logger.Warn("logout audit entry lost", zap.Error(err))
	}
}

// LockoutRemaining reports how long the gate stays locked, zero when
// open.
func (s *Service) LockoutRemaining() time.Duration {
	state := models.LockoutState{}
	s.store.Get(store.KeyLockout, &state)
	if until, ok := lockoutDeadline(state); ok {
		if remaining := until.Sub(s.now()); remaining > 0 {
			return remaining
		}
	}
	return 0
}

func (s *Service) credentialsMatch(email, password string) bool {
	emailOK := strings.EqualFold(strings.TrimSpace(email), s.admin.Email)

	var passwordOK bool
	if s.admin.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	}
	return emailOK && passwordOK
}

func lockoutDeadline(state models.LockoutState) (time.Time, bool) {
	if state.LockoutUntil == "" {
		return time.Time{}, false
	}
	until, err := time.Parse(time.RFC3339, state.LockoutUntil)
	if err != nil {
		return time.Time{}, false
	}
	return until, true
}
