package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "eurobot-backend"

// AdminClaims are the claims carried by an administrative bearer token
type AdminClaims struct {
	Role string `json:"role" example:"admin"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RoleAdmin is the only role allowed through the admin guard
const RoleAdmin = "admin"

// Service issues and validates HS256 admin tokens
type Service struct {
	secret []byte
	now    func() time.Time
}

// NewService creates a token service for the given shared secret
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), now: time.Now}
}

// GenerateToken signs an admin token for subject valid for ttl
func (s *Service) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("jwt secret is required")
	}
	now := s.now()
	claims := &AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and verifies an admin token
func (s *Service) ValidateJWT(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Role != RoleAdmin {
		return nil, fmt.Errorf("role %q is not allowed", claims.Role)
	}
	return claims, nil
}
