package services

import (
	"errors"
	"fmt"
	"log"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup, login and the signed identity tokens the
// cart endpoints rely on.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	mqClient  *rabbitmq.Client
}

// NewAuthService creates a new AuthService. mqClient may be nil; event
// publication is best-effort.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, mqClient *rabbitmq.Client) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		mqClient:  mqClient,
	}
}

// Signup registers a new user and returns an issued token. The password
// is stored as a bcrypt hash, never in plaintext.
func (s *AuthService) Signup(name, email, password string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return "", ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", fmt.Errorf("failed to check for existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishEvent("user.registered", map[string]interface{}{
			"userID": user.ID,
			"email":  user.Email,
		}); err != nil {
			log.Printf("Warning: failed to publish user registered event for %s: %v", user.ID, err)
		}
	}

	return s.IssueToken(user.ID)
}

// Login authenticates a user by email and password and returns an issued
// token. The hash comparison is constant-time.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrWrongEmail
		}
		return "", fmt.Errorf("failed to look up user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrWrongPassword
	}

	return s.IssueToken(user.ID)
}

// IssueToken produces a signed token embedding the user id. Tokens carry
// no expiry and there is no revocation; they stay valid until the signing
// secret rotates.
func (s *AuthService) IssueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken parses and validates a token, returning the embedded user
// id. Identity comes from the signature alone; no database lookup.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
