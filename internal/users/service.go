package users

import (
	"context"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
)

type repository interface {
	List(ctx context.Context) ([]models.User, error)
}

// Service exposes user directory reads. Password material never leaves the
// repository layer.
type Service interface {
	List(ctx context.Context) ([]UserDTO, error)
}

type service struct {
	repo repository
}

// NewService builds a users service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "users repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	out := make([]UserDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out, nil
}
