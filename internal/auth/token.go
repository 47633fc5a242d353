package auth

import (
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// TokenVerifier validates a credential and returns its claims.
type TokenVerifier interface {
	Verify(credential string) (*domain.ClaimSet, error)
}

// TokenManager issues and verifies HS256 signed credentials.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken builds and signs a credential for the subject.
func (tm *TokenManager) GenerateToken(subject string) (string, *domain.ClaimSet, error) {
	issuedAt := tm.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tm.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", nil, err
	}
	return tokenString, claimSet(&claims), nil
}

// Verify checks signature, algorithm and expiry. It performs no I/O, so the
// same credential always yields the same ClaimSet while it is valid.
func (tm *TokenManager) Verify(credential string) (*domain.ClaimSet, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, ErrMissingCredential
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(credential, &claims, func(*jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredential
	}
	if claims.Subject == "" {
		return nil, ErrInvalidCredential
	}
	return claimSet(&claims), nil
}

func claimSet(claims *jwt.RegisteredClaims) *domain.ClaimSet {
	set := &domain.ClaimSet{ID: claims.ID, Subject: claims.Subject}
	if claims.IssuedAt != nil {
		set.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		set.ExpiresAt = claims.ExpiresAt.Time
	}
	return set
}
