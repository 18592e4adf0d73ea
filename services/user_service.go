package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
	"ledkino.pl/repositories"
)

// UserServiceError błędy zarządzania kontami.
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound      UserServiceError = "użytkownik nie istnieje"
	ErrUserForbidden     UserServiceError = "brak uprawnień do tej operacji"
	ErrUserEmailTaken    UserServiceError = "konto z tym adresem e-mail już istnieje"
	ErrUserInvalidInput  UserServiceError = "nieprawidłowe dane użytkownika"
	ErrUserHashingFailed UserServiceError = "nie udało się zabezpieczyć hasła"
	ErrUserSelfDelete    UserServiceError = "nie można usunąć własnego konta"
)

// UpdateUserInput zmiany konta; pola nil pozostają bez zmian.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.UserRole
	IsActive *bool
}

// IUserService zarządzanie kontami z regułami ról: editor widzi i edytuje
// wyłącznie własne konto i nie może zmienić sobie roli; admin bez ograniczeń.
type IUserService interface {
	GetByID(ctx context.Context, actor *models.User, id uint) (*models.User, error)
	List(ctx context.Context, actor *models.User) ([]models.User, error)
	Create(ctx context.Context, actor *models.User, email, name, password string, role models.UserRole) (*models.User, error)
	Update(ctx context.Context, actor *models.User, id uint, input UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
}

// UserService implementuje IUserService.
type UserService struct {
	repo repositories.IUserRepository
}

// NewUserService tworzy serwis kont.
func NewUserService() IUserService {
	return &UserService{repo: repositories.NewUserRepository()}
}

// GetByID zwraca konto; editor tylko własne.
func (s *UserService) GetByID(ctx context.Context, actor *models.User, id uint) (*models.User, error) {
	if actor.Role != models.RoleAdmin && actor.ID != id {
		return nil, ErrUserForbidden
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List zwraca wszystkie konta (tylko admin).
func (s *UserService) List(ctx context.Context, actor *models.User) ([]models.User, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrUserForbidden
	}
	return s.repo.FindAll(ctx)
}

// Create zakłada konto (tylko admin).
func (s *UserService) Create(ctx context.Context, actor *models.User, email, name, password string, role models.UserRole) (*models.User, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrUserForbidden
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: e-mail i hasło są wymagane", ErrUserInvalidInput)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: nieznana rola %q", ErrUserInvalidInput, role)
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrUserHashingFailed
	}
	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	configslog.Log.Info("Założono konto", zap.String("email", email), zap.String("role", string(role)))
	return user, nil
}

// Update modyfikuje konto. Editor może zmienić tylko własne dane i nigdy
// własnej roli ani flagi aktywności.
func (s *UserService) Update(ctx context.Context, actor *models.User, id uint, input UpdateUserInput) (*models.User, error) {
	if actor.Role != models.RoleAdmin {
		if actor.ID != id {
			return nil, ErrUserForbidden
		}
		if input.Role != nil || input.IsActive != nil {
			return nil, fmt.Errorf("%w: nie możesz zmienić własnej roli", ErrUserForbidden)
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *input.Email); err == nil {
			return nil, ErrUserEmailTaken
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrUserHashingFailed
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("%w: nieznana rola %q", ErrUserInvalidInput, *input.Role)
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete usuwa konto. Tylko admin i nigdy samego siebie.
func (s *UserService) Delete(ctx context.Context, actor *models.User, id uint) error {
	if actor.Role != models.RoleAdmin {
		return ErrUserForbidden
	}
	if actor.ID == id {
		return ErrUserSelfDelete
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	configslog.Log.Info("Usunięto konto", zap.Uint("id", id), zap.Uint("by", actor.ID))
	return nil
}
