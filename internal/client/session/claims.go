package session

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the part of the token payload the client cares about.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the resolved username and role of a session.
type Identity struct {
	Username string
	Role     string
}

// DefaultIdentity is used when a freshly issued token cannot be decoded.
func DefaultIdentity() Identity {
	return Identity{Username: common.DefaultUsername}
}

// DecodeClaims reads the payload segment of token. The signature is not
// checked and an unknown alg header is tolerated. Any structural problem is
// reported as common.ErrDecode.
func DecodeClaims(token string) (Claims, error) {
	claims := Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil && !errors.Is(err, jwt.ErrTokenUnverifiable) {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	return claims, nil
}

// IdentityFromToken decodes token and resolves the username, falling back
// to the subject and then to common.DefaultUsername.
func IdentityFromToken(token string) (Identity, error) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		Username: common.FirstNonEmpty(claims.Username, claims.Subject, common.DefaultUsername),
		Role:     claims.Role,
	}, nil
}
