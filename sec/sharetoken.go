package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ShareClaims identify one shareable document in a time-limited link token
type ShareClaims struct {
	Kind string `json:"knd"`
	Doc  string `json:"doc"`
	jwt.RegisteredClaims
}

// IssueShareToken signs a capability token granting read access to one
// document until the TTL runs out. Every token carries a random id, so two
// links to the same document are distinct.
func IssueShareToken(secret []byte, kind, docID string, ttl time.Duration) (string, error) {
	jti, err := GenerateOpaqueToken(16)
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := ShareClaims{
		Kind: kind,
		Doc:  docID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseShareToken verifies the signature and expiry, returning the document
// kind and id the token grants
func ParseShareToken(secret []byte, signedToken string) (kind, docID string, err error) {
	token, err := jwt.ParseWithClaims(signedToken, &ShareClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*ShareClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid share token")
	}
	return claims.Kind, claims.Doc, nil
}
