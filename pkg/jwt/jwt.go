package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for anything that is not a token we signed.
var ErrInvalidToken = errors.New("invalid token")

// Issuer mints and verifies user tokens. A token carries no user data, only a
// random jti, so it stays opaque to clients; the user is found by looking the
// token up in storage.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an Issuer signing with HS256 and the given secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// GenerateToken creates a new signed token. Tokens do not expire.
func (i *Issuer) GenerateToken() (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(i.secret)
}

// Verify checks the signature and signing method of tokenString.
func (i *Issuer) Verify(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" {
		return ErrInvalidToken
	}
	return nil
}
