package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/config"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type Authenticator interface {
	LoginUser(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CreateUser(username, password, role string) (*domain.User, error)
	BootstrapAdmin() error
}

type Service struct {
	store recordstore.Store
	cfg   *config.Config
}

func NewService(store recordstore.Store, cfg *config.Config) Authenticator {
	return &Service{
		store: store,
		cfg:   cfg,
	}
}

// LoginUser checks the credentials against the user table and returns a
// signed JWT on success.
func (s *Service) LoginUser(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	}

	username = normalizeUsername(username)

	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrStoreOperation, "error looking up user")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "wrong password")
	}

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "error signing token")
	}

	return token, nil
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *Service) CreateUser(username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	}

	if role == "" {
		role = domain.RoleStaff
	}
	if role != domain.RoleAdmin && role != domain.RoleStaff {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, fmt.Sprintf("role %q", role))
	}

	username = normalizeUsername(username)

	existing, err := s.store.GetUserByUsername(username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrStoreOperation, "error looking up user")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "username is taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.store.AppendUser(user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrStoreOperation, "error saving user")
	}

	return &user, nil
}

// BootstrapAdmin seeds the configured admin account when the user table is
// empty, so a fresh installation can log in at all.
func (s *Service) BootstrapAdmin() error {
	users, err := s.store.ListUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	if _, err := s.CreateUser(s.cfg.Admin.Username, s.cfg.Admin.Password, domain.RoleAdmin); err != nil {
		return err
	}

	logrus.WithField("username", s.cfg.Admin.Username).Warn("seeded initial admin user; change its password")
	return nil
}

func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
