package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/models"
)

const tokenIssuer = "JobPortal"

var ErrInvalidSessionToken = errors.New("invalid session token")

// ---------------------------------------------------------------------
// SessionService interface
// ---------------------------------------------------------------------

type SessionService interface {
	// GenerateToken mints a signed session token for the account.
	GenerateToken(account *models.Account) (string, error)

	// ValidateToken parses and verifies a session token, returning the
	// account ID and role embedded in it.
	ValidateToken(tokenString string) (uuid.UUID, models.Role, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type sessionService struct {
	secretKey []byte
	expiry    time.Duration
}

func NewSessionService(cfg *config.Config) SessionService {
	return &sessionService{
		secretKey: cfg.SecretKey,
		expiry:    cfg.SessionTokenExpiry,
	}
}

func (s *sessionService) GenerateToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   tokenIssuer,
		"sub":   account.ID.String(),
		"email": account.Email,
		"role":  string(account.Role),
		"exp":   now.Add(s.expiry).Unix(),
		"iat":   now.Unix(),
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *sessionService) ValidateToken(tokenString string) (uuid.UUID, models.Role, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidSessionToken
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrInvalidSessionToken
	}

	roleClaim, _ := claims["role"].(string)
	role := models.Role(roleClaim)
	if !role.Valid() {
		return uuid.Nil, "", ErrInvalidSessionToken
	}

	return accountID, role, nil
}
