package authenticating

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "keyword-bid-sync"

// Authenticator protege a API de operação com um único administrador configurado por ambiente
type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg.Auth,
		now: time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) configured() bool {
	return s.cfg.Secret != "" && s.cfg.AdminEmail != "" && s.cfg.AdminPasswordHash != ""
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if !s.configured() {
		return "", NewAuthError(ErrAuthNotConfigured, apiErrors.ErrServiceUnavailable, "Defina AUTH_SECRET, ADMIN_EMAIL e ADMIN_PASSWORD_HASH")
	}

	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)
	sameEmail := subtle.ConstantTimeCompare([]byte(email), []byte(handleEmail(s.cfg.AdminEmail))) == 1

	// a senha é sempre comparada para não revelar pelo tempo de resposta se o email existe
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password))
	if !sameEmail || passwordErr != nil {
		logrus.WithField("email", email).Warn("Tentativa de login com credenciais inválidas")
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	token, err := s.generateJWT(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(email string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.Secret == "" {
		return nil, NewAuthError(ErrAuthNotConfigured, apiErrors.ErrServiceUnavailable, "")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&domain.Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
