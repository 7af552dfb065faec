package auth

import (
	"context"
	"errors"
	"strings"

	"esg-backend/internal/models"
	"esg-backend/internal/pkg/token"
	"esg-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	DB     *gorm.DB
	Secret string
}

// RegisterInput for register request body.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput for login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validates input, hashes the password and creates the user.
// Returns the user and a signed token.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, "", ErrFieldsRequired
	}
	if !validation.IsValidName(name) {
		return nil, "", ErrInvalidName
	}
	if !validation.IsValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	if !validation.IsValidPassword(input.Password) {
		return nil, "", ErrWeakPassword
	}

	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", err
	}

	signed, err := token.Sign(user.UserID, s.Secret)
	if err != nil {
		return nil, "", err
	}
	return &user, signed, nil
}

// Login finds the user by email and verifies the password. Absent user and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, "", ErrInvalidCredentials
	}
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := token.Sign(user.UserID, s.Secret)
	if err != nil {
		return nil, "", err
	}
	return &user, signed, nil
}

// GetUser loads the user behind a verified token.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
