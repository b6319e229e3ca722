package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", time.Minute, time.Hour)
}

func TestIssuePairAndVerify(t *testing.T) {
	m := newTestManager()

	access, refresh, err := m.IssuePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	userID, err := m.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	userID, err = m.VerifyRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenTypeMismatch(t *testing.T) {
	m := newTestManager()

	access, refresh, err := m.IssuePair(7)
	require.NoError(t, err)

	_, err = m.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, -time.Minute)

	access, _, err := m.IssuePair(7)
	require.NoError(t, err)

	_, err = m.VerifyAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedToken(t *testing.T) {
	m := newTestManager()

	access, _, err := m.IssuePair(7)
	require.NoError(t, err)

	tampered := access[:len(access)-2] + "xx"
	_, err = m.VerifyAccess(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecret(t *testing.T) {
	access, _, err := newTestManager().IssuePair(7)
	require.NoError(t, err)

	other := NewManager("other-secret", time.Minute, time.Hour)
	_, err = other.VerifyAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
