package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
	"ledkino.pl/repositories"
)

// AuthServiceError błędy uwierzytelniania.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "nieprawidłowy e-mail lub hasło"
	ErrAccountInactive    AuthServiceError = "konto jest nieaktywne"
)

// IAuthService bramka logowania do panelu.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// AuthService implementuje IAuthService na bcrypt.
type AuthService struct {
	userRepo repositories.IUserRepository
}

// NewAuthService tworzy serwis uwierzytelniania.
func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

// Authenticate porównuje hasło z zapisanym hashem bcrypt.
// Nie zdradzamy, czy zawiódł e-mail czy hasło.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.Log.Warn("Nieudana próba logowania", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return user, nil
}
