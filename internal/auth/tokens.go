package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, expiry, and access/refresh type mismatch. Callers get no
// more detail than the caller of the API should see.
var ErrInvalidToken = errors.New("invalid token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Manager signs and verifies the HS256 access/refresh token pair.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssuePair returns a short-lived access token and a longer-lived refresh
// token for the given user.
func (m *Manager) IssuePair(userID uint) (access, refresh string, err error) {
	access, err = m.issue(userID, tokenTypeAccess, m.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = m.issue(userID, tokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// IssueAccess returns a fresh access token, used when rotating via a
// refresh token.
func (m *Manager) IssueAccess(userID uint) (string, error) {
	return m.issue(userID, tokenTypeAccess, m.accessTTL)
}

func (m *Manager) issue(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccess resolves an access token to a user ID.
func (m *Manager) VerifyAccess(token string) (uint, error) {
	return m.verify(token, tokenTypeAccess)
}

// VerifyRefresh resolves a refresh token to a user ID.
func (m *Manager) VerifyRefresh(token string) (uint, error) {
	return m.verify(token, tokenTypeRefresh)
}

func (m *Manager) verify(token, wantType string) (uint, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	if c.TokenType != wantType {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
