package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task_manager/internal/models"
	"task_manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Domain errors for auth flows.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles user auth logic
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(repo repository.Authorization, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{authRepo: repo, signingKey: []byte(cfg.SigningKey), tokenTTL: ttl}
}

// Register stores a new user under the lowercased username and opens a
// session for it. The existence check and the insert are not atomic.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.Session, error) {
	username = normalizeUsername(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return models.Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	existing, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.Session{}, err
	}
	if existing != nil {
		return models.Session{}, ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.Session{}, err
	}
	if _, err := s.authRepo.Create(ctx, username, hash); err != nil {
		return models.Session{}, err
	}
	return models.Session{User: username}, nil
}

// Login checks credentials. Unknown users and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	u, err := s.authRepo.GetByUsername(ctx, normalizeUsername(username))
	if err != nil {
		return models.Session{}, err
	}
	if u == nil {
		return models.Session{}, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.Session{}, ErrInvalidCredentials
	}
	return models.Session{User: u.Username}, nil
}

// Profile returns the stored user, or nil if there is none.
func (s *AuthService) Profile(ctx context.Context, username string) (*models.User, error) {
	return s.authRepo.GetByUsername(ctx, normalizeUsername(username))
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateToken validates credentials and returns JWT
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	sess, err := s.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.issueToken(sess.User)
}

// ParseToken parses JWT and returns the username it was issued to
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	})
	return token.SignedString(s.signingKey)
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
