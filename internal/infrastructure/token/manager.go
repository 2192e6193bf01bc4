// Package token issues and verifies the signed tokens used across the system:
// access, refresh and password-reset tokens share one secret and differ only
// by claim content and expiry.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazroba/internal/domain/entity"
	"bazroba/pkg/errors"
)

const PurposePasswordReset = "password-reset"

type Claims struct {
	jwt.RegisteredClaims
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL, resetTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		resetTTL:   resetTTL,
	}
}

// GeneratePair issues an access and a refresh token for the user, both
// carrying the same identity claims.
func (m *Manager) GeneratePair(user *entity.User) (*Pair, error) {
	access, err := m.sign(user, m.accessTTL, "")
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(user, m.refreshTTL, "")
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// ResetTTL reports the lifetime of reset tokens so callers can persist a
// matching expiry next to the token.
func (m *Manager) ResetTTL() time.Duration { return m.resetTTL }

// GenerateResetToken issues a short-lived single-purpose token for password
// resets.
func (m *Manager) GenerateResetToken(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.resetTTL)),
		},
		Purpose: PurposePasswordReset,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	return claims, nil
}

func (m *Manager) sign(user *entity.User, ttl time.Duration, purpose string) (string, error) {
	now := time.Now()
	// The jti keeps two tokens signed within the same second distinguishable,
	// which refresh rotation depends on.
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:   user.Email,
		Phone:   user.Phone,
		Role:    user.Role,
		Purpose: purpose,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
