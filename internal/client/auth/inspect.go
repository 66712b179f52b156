package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read from a JWT access token without a key.
type TokenInfo struct {
	Subject   string
	ExpiresAt *time.Time
}

// Expired reports whether the token carries an expiry that is before now.
func (i TokenInfo) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}

// Inspect decodes the claims of a JWT without verifying its signature. It is
// for display only; opaque tokens return common.ErrInvalidToken.
func Inspect(token string) (TokenInfo, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		info.ExpiresAt = &exp
	}
	return info, nil
}
