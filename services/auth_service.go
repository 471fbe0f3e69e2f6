package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"chat-app/models"
	"chat-app/repositories"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenValidity is how long an issued session token stays valid.
const TokenValidity = time.Hour

// AuthService registers and authenticates users. Tokens are stateless; no
// server-side session is kept.
type AuthService struct {
	users     repositories.UserRepository
	jwtSecret []byte
}

func NewAuthService(users repositories.UserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// Register creates an account with a bcrypt-hashed password. The email must
// not be in use.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	_, err := s.users.FindByEmail(email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token string
	User  *models.User
}

// Login verifies the password and issues a signed, time-limited session token.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, s.jwtSecret, TokenValidity)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}
