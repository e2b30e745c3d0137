package devserver

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/me/hotelx/internal/devserver/store"
	"github.com/me/hotelx/pkg/hotelapi"
	"github.com/me/hotelx/pkg/model"
)

// issueTokenPair mints a signed access token for the user and stores a fresh
// refresh token. The refresh token itself is opaque; only its SHA-256 hash is
// persisted.
func (s *Server) issueTokenPair(ctx context.Context, u *store.User) (*model.TokenPair, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		hotelapi.ClaimNameIdentifier: u.ID,
		hotelapi.ClaimGivenName:      u.FirstName,
		hotelapi.ClaimSurname:        u.LastName,
		hotelapi.ClaimName:           u.Email,
		hotelapi.ClaimPersonalCode:   u.PersonalCode,
		hotelapi.ClaimRole:           u.Role,
		"iat":                        now.Unix(),
		"exp":                        now.Add(time.Duration(s.config.AccessTTLMin) * time.Minute).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	err = s.store.SaveRefreshToken(ctx, &store.RefreshToken{
		Hash:      hashToken(refresh),
		UserID:    u.ID,
		ExpiresAt: now.Add(time.Duration(s.config.RefreshTTLDays) * 24 * time.Hour).UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &model.TokenPair{JWT: access, RefreshToken: refresh}, nil
}

// newRefreshToken returns 32 bytes of randomness as a hex string.
func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// hashToken hashes a refresh token for storage and lookup.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
