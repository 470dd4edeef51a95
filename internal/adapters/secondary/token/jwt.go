package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/FrancisEgan/TodoApp/internal/core/app"
	"github.com/FrancisEgan/TodoApp/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Service issues and validates HS256 JWTs.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// New creates a new token service.
func New(secret, issuer string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

var _ app.TokenService = (*Service)(nil)

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Issue creates a signed bearer token for the user.
func (s *Service) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		Name:  user.FirstName + " " + user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse validates the signature and lifetime of a bearer token and returns
// its claims.
func (s *Service) Parse(raw string) (domain.TokenClaims, error) {
	var out claims
	t, err := jwt.ParseWithClaims(raw, &out, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(s.issuer))
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !t.Valid {
		return domain.TokenClaims{}, jwt.ErrTokenInvalidClaims
	}

	userID, err := strconv.ParseInt(out.Subject, 10, 64)
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("invalid subject claim: %w", err)
	}

	return domain.TokenClaims{
		UserID:    userID,
		Email:     out.Email,
		Name:      out.Name,
		IssuedAt:  out.IssuedAt.Time,
		ExpiresAt: out.ExpiresAt.Time,
	}, nil
}
