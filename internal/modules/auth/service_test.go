package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msadmin/core/internal/config"
	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/modules/activity"
	"github.com/msadmin/core/internal/pkg/jwt"
	"github.com/msadmin/core/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testEmail    = "sayan@microsoftadmin.in"
	testPassword = "admin123"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestGate(t *testing.T) (*Service, *jwt.Signer, *testClock, *activity.Service) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	audit := activity.NewService(st, zap.NewNop())
	signer := jwt.NewSigner("test-secret", time.Hour)
	svc := NewService(st, audit, signer,
		config.AdminConfig{Email: testEmail, Name: "Sayan Ghosh", Password: testPassword},
		config.LockoutConfig{MaxAttempts: 3, WindowMinutes: 30},
		zap.NewNop())

	clock := &testClock{now: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}
	svc.SetClock(clock.Now)
	return svc, signer, clock, audit
}

func TestLoginSuccess(t *testing.T) {
	svc, signer, _, audit := newTestGate(t)

	token, user, err := svc.Login(testEmail, testPassword)
	require.NoError(t, err)
	assert.Equal(t, testEmail, user.Email)
	assert.Equal(t, "admin", user.Role)

	claims, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, claims.Email)

	logs := audit.Recent()
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionLogin, logs[0].Action)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc, _, _, _ := newTestGate(t)

	_, _, err := svc.Login("SAYAN@MicrosoftAdmin.in", testPassword)
	assert.NoError(t, err)
}

func TestFailedLoginReportsRemainingAttempts(t *testing.T) {
	svc, _, _, _ := newTestGate(t)

	_, _, err := svc.Login(testEmail, "wrong")
	var bad *CredentialsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 2, bad.Remaining)

	_, _, err = svc.Login(testEmail, "wrong")
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 1, bad.Remaining)
}

func TestThreeFailuresLockTheGate(t *testing.T) {
	svc, _, clock, _ := newTestGate(t)

	_, _, _ = svc.Login(testEmail, "wrong")
	_, _, _ = svc.Login(testEmail, "wrong")
	_, _, err := svc.Login(testEmail, "wrong")

	var locked *LockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, clock.now.Add(30*time.Minute), locked.Until)
	assert.Positive(t, svc.LockoutRemaining())

	// A 4th attempt while locked is rejected without consuming an
	// attempt, even with correct credentials.
	_, _, err = svc.Login(testEmail, testPassword)
	require.ErrorAs(t, err, &locked)
}

func TestLockoutExpiresAndClears(t *testing.T) {
	svc, _, clock, _ := newTestGate(t)

	for i := 0; i < 3; i++ {
		_, _, _ = svc.Login(testEmail, "wrong")
	}
	clock.now = clock.now.Add(31 * time.Minute)
	assert.Zero(t, svc.LockoutRemaining())

	_, _, err := svc.Login(testEmail, testPassword)
	require.NoError(t, err)

	// Counter and lockout both cleared: three fresh attempts again.
	_, _, err = svc.Login(testEmail, "wrong")
	var bad *CredentialsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 2, bad.Remaining)
}

func TestLockoutExpiryResetsCounterForFailuresToo(t *testing.T) {
	svc, _, clock, _ := newTestGate(t)

	for i := 0; i < 3; i++ {
		_, _, _ = svc.Login(testEmail, "wrong")
	}
	clock.now = clock.now.Add(31 * time.Minute)

	_, _, err := svc.Login(testEmail, "wrong")
	var bad *CredentialsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 2, bad.Remaining)
}

func TestLockoutStateSurvivesServiceRestart(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	audit := activity.NewService(st, zap.NewNop())
	signer := jwt.NewSigner("test-secret", time.Hour)
	admin := config.AdminConfig{Email: testEmail, Name: "Sayan Ghosh", Password: testPassword}
	lockout := config.LockoutConfig{MaxAttempts: 3, WindowMinutes: 30}
	clock := &testClock{now: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}

	first := NewService(st, audit, signer, admin, lockout, zap.NewNop())
	first.SetClock(clock.Now)
	for i := 0; i < 3; i++ {
		_, _, _ = first.Login(testEmail, "wrong")
	}

	second := NewService(st, audit, signer, admin, lockout, zap.NewNop())
	second.SetClock(clock.Now)

	var locked *LockedError
	_, _, err = second.Login(testEmail, testPassword)
	require.ErrorAs(t, err, &locked)
}

func TestWrongEmailFails(t *testing.T) {
	svc, _, _, _ := newTestGate(t)

	_, _, err := svc.Login("someone@else.example", testPassword)
	var bad *CredentialsError
	assert.ErrorAs(t, err, &bad)
}

func TestBcryptHashTakesPrecedence(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	// Hash of "hunter2", cost 10.
	svc := NewService(st, activity.NewService(st, zap.NewNop()),
		jwt.NewSigner("test-secret", time.Hour),
		config.AdminConfig{
			Email:        testEmail,
			Name:         "Sayan Ghosh",
			Password:     "ignored-when-hash-set",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuu7gIUFBKrYXdzQy8HrouzMJyZ4cijAb2",
		},
		config.LockoutConfig{MaxAttempts: 3, WindowMinutes: 30}, zap.NewNop())
	svc.SetClock(time.Now)

	_, _, err = svc.Login(testEmail, "ignored-when-hash-set")
	var bad *CredentialsError
	require.ErrorAs(t, err, &bad)

	_, _, err = svc.Login(testEmail, "hunter2")
	assert.NoError(t, err)
}

func TestErrBusyIsSentinel(t *testing.T) {
	assert.True(t, errors.Is(ErrBusy, ErrBusy))
}

func TestFailureDelayDoesNotHoldStoreLock(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := NewService(st, activity.NewService(st, zap.NewNop()),
		jwt.NewSigner("test-secret", time.Hour),
		config.AdminConfig{Email: testEmail, Name: "Sayan Ghosh", Password: testPassword},
		config.LockoutConfig{MaxAttempts: 3, WindowMinutes: 30}, zap.NewNop())
	svc.SetClock(time.Now)
	svc.failDelay = 500 * time.Millisecond

	done := make(chan error, 1)
	go func() {
		_, _, err := svc.Login(testEmail, "wrong")
		done <- err
	}()

	// Let the attempt reach its deterrent pause, then make sure the
	// store stays writable while it runs.
	time.Sleep(100 * time.Millisecond)
	start := time.Now()
	st.Lock()
	require.NoError(t, st.Save(store.KeyAnalytics, map[string]int{"2026-08-30": 1}))
	st.Unlock()
	blocked := time.Since(start)

	var bad *CredentialsError
	require.ErrorAs(t, <-done, &bad)
	assert.Less(t, blocked, 250*time.Millisecond)
}
