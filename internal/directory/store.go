package directory

//go:generate mockgen -source=store.go -destination=mock_store.go -package=directory

import (
	"context"

	"github.com/michael-freling/dirtree/internal/db"
)

// Store persists directories keyed uniquely by their path.
type Store interface {
	// FindByPath returns db.ErrRecordNotFound if no directory has the path.
	FindByPath(ctx context.Context, path string) (db.Directory, error)
	FindAllWithin(ctx context.Context, path string) ([]db.Directory, error)
	// FindAllOrderByPath returns all directories in ascending order of their paths.
	FindAllOrderByPath(ctx context.Context) ([]db.Directory, error)

	BatchCreateIgnoreExisting(ctx context.Context, directories []db.Directory) error
	BatchUpdatePaths(ctx context.Context, directories []db.Directory) error
	BatchDeleteByPaths(ctx context.Context, paths []string) error
	DeleteWithin(ctx context.Context, path string) error

	// Transaction runs f atomically. Calls made with the context passed to f join it.
	Transaction(ctx context.Context, f func(context.Context) error) error
}
