package storage

import (
	"context"

	"github.com/darrenchooji/fiona/internal/domain"
)

// Store persists the whole task list. Save replaces everything previously
// stored; there are no partial updates.
type Store interface {
	Name() string
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}
