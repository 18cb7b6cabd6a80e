package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const (
	issuer   = "financeguard"
	audience = "financeguard/ledger"
)

var TimeNow = time.Now

var (
	ErrTokenNotValid error = errors.New("token is not valid")
	ErrTokenExpired  error = errors.New("token expired")
)

// TokenInfo describes the session a token grants.
type TokenInfo struct {
	Subject string
	TTL     time.Duration
}

// SessionClaims are the claims of a ledger session token. Subject holds the
// wallet address that logged in.
type SessionClaims struct {
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

// Generate builds an unsigned session token with a fresh token id.
func (s *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Issuer:    issuer,
			Audience:  audience,
			Subject:   data.Subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(data.TTL).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
}

func (s *JWTService) Sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature, issuer, audience and expiry against TimeNow.
func (s *JWTService) Validate(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parser := jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w: %w", err, ErrTokenNotValid)
	}

	if !claims.VerifyIssuer(issuer, true) || !claims.VerifyAudience(audience, true) {
		return nil, fmt.Errorf("foreign session token: %w", ErrTokenNotValid)
	}
	if !claims.VerifyExpiresAt(TimeNow().Unix(), true) {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(claims.ExpiresAt, 0).UTC(), ErrTokenExpired)
	}

	return claims, nil
}
