package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"social-platform/config"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Service issues and validates HS256 session tokens. A token carries
// the user id as Subject plus the admin role flag; nothing else, so a
// stolen token never leaks profile data.
type Service struct {
	secretKey   []byte
	issuer      string
	expireAfter time.Duration // 0 = no exp claim
}

// Claims is the session token payload.
type Claims struct {
	Admin bool `json:"admin"`
	jwtv5.RegisteredClaims
}

// NewService creates a token service from configuration.
func NewService(cfg config.JWTConfig) *Service {
	return &Service{
		secretKey:   []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		expireAfter: cfg.ExpireTime,
	}
}

// Generate signs a session token for the given user. With a zero
// configured lifetime the token has no exp claim and stays valid until
// the secret rotates, matching the observed deployment default. Any
// other lifetime, negative included, sets exp, so a misconfigured
// negative value yields tokens that are already expired rather than
// eternal.
func (s *Service) Generate(userID uint, admin bool) (string, error) {
	if userID == 0 {
		return "", errors.New("userID is required")
	}

	now := time.Now()
	claims := &Claims{
		Admin: admin,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwtv5.NewNumericDate(now),
			NotBefore: jwtv5.NewNumericDate(now),
		},
	}
	if s.expireAfter != 0 {
		claims.ExpiresAt = jwtv5.NewNumericDate(now.Add(s.expireAfter))
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &Claims{}
	parsed, err := jwtv5.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwtv5.Token) (interface{}, error) {
			if token.Method != jwtv5.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secretKey, nil
		},
		jwtv5.WithIssuer(s.issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// UserID extracts the numeric user id from validated claims.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid subject")
	}
	return uint(id), nil
}
