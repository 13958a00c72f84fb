// Package token issues and validates the signed bearer credentials used
// by the API: a short-lived access token and a longer-lived refresh
// token, distinguished by a token_type claim.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned for malformed, tampered, or wrong-type tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token is past its expiry.
	ErrExpiredToken = errors.New("token has expired")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims carries the user identity and token type alongside the
// registered JWT claims.
type Claims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Config controls signing and lifetimes.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Manager signs and verifies HS256 tokens.
type Manager struct {
	cfg Config
}

// Pair bundles a freshly issued access/refresh token pair.
type Pair struct {
	Access           string
	Refresh          string
	RefreshID        string
	ExpiresIn        int64
	RefreshExpiresAt time.Time
}

func NewManager(cfg Config) *Manager {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &Manager{cfg: cfg}
}

// GeneratePair issues an access and a refresh token for the user. The
// refresh token carries a unique id so it can be tracked server-side.
func (m *Manager) GeneratePair(userID string) (*Pair, error) {
	now := time.Now()

	access, err := m.sign(userID, TypeAccess, "", now, m.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}

	refreshID := uuid.NewString()
	refresh, err := m.sign(userID, TypeRefresh, refreshID, now, m.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{
		Access:           access,
		Refresh:          refresh,
		RefreshID:        refreshID,
		ExpiresIn:        int64(m.cfg.AccessTTL.Seconds()),
		RefreshExpiresAt: now.Add(m.cfg.RefreshTTL),
	}, nil
}

// GenerateAccess issues a new access token only, used on refresh.
func (m *Manager) GenerateAccess(userID string) (string, error) {
	return m.sign(userID, TypeAccess, "", time.Now(), m.cfg.AccessTTL)
}

// ValidateAccess verifies an access token and returns its claims.
func (m *Manager) ValidateAccess(tokenString string) (*Claims, error) {
	return m.validate(tokenString, TypeAccess)
}

// ValidateRefresh verifies a refresh token and returns its claims.
func (m *Manager) ValidateRefresh(tokenString string) (*Claims, error) {
	return m.validate(tokenString, TypeRefresh)
}

// AccessTTLSeconds returns the configured access token lifetime in seconds.
func (m *Manager) AccessTTLSeconds() int64 {
	return int64(m.cfg.AccessTTL.Seconds())
}

func (m *Manager) sign(userID, tokenType, id string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    m.cfg.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
}

func (m *Manager) validate(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
