// Package services содержит бизнес-логику чтения пользователей.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/subscription-tracker/internal/errs"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// UserRepository определяет методы чтения пользователей из хранилища.
type UserRepository interface {
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// UserService реализует операции чтения пользователей.
type UserService struct {
	repo UserRepository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List возвращает всех пользователей без пагинации.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Get возвращает пользователя по UID.
func (s *UserService) Get(ctx context.Context, userUID string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrap(errs.ErrNotFound, "User not found")
		}
		return nil, err
	}
	return user, nil
}
