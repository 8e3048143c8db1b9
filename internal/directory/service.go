package directory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/michael-freling/dirtree/internal/db"
	"github.com/michael-freling/dirtree/internal/dirpath"
	"github.com/michael-freling/dirtree/internal/xerrors"
	"github.com/michael-freling/dirtree/internal/xslices"
)

var (
	ErrDirectoryNotFound = errors.New("directory not found")
)

type Service struct {
	logger *slog.Logger
	store  Store
}

func NewService(logger *slog.Logger, store Store) *Service {
	return &Service{
		logger: logger,
		store:  store,
	}
}

func normalizePath(name, path string) (string, error) {
	normalized := dirpath.Normalize(path)
	if normalized == "" {
		return "", fmt.Errorf("%w: %s has no directory name: %q", xerrors.ErrInvalidArgument, name, path)
	}
	return normalized, nil
}

// Create creates a directory with all of its missing ancestors.
// Creating an existing directory succeeds without any change.
func (service Service) Create(ctx context.Context, path string) error {
	path, err := normalizePath("path", path)
	if err != nil {
		return err
	}

	if err := service.createAncestorChain(ctx, path); err != nil {
		return fmt.Errorf("service.createAncestorChain: %w", err)
	}
	service.logger.InfoContext(ctx, "Created a directory", "path", path)
	return nil
}

func (service Service) createAncestorChain(ctx context.Context, path string) error {
	directories := xslices.Map(dirpath.AncestorChain(path), func(ancestor string) db.Directory {
		return db.Directory{
			Name: dirpath.Base(ancestor),
			Path: ancestor,
		}
	})
	if err := service.store.BatchCreateIgnoreExisting(ctx, directories); err != nil {
		return fmt.Errorf("store.BatchCreateIgnoreExisting: %w", err)
	}
	return nil
}

func (service Service) findDirectory(ctx context.Context, operation string, path string) (db.Directory, error) {
	directory, err := service.store.FindByPath(ctx, path)
	if errors.Is(err, db.ErrRecordNotFound) {
		return db.Directory{}, fmt.Errorf("cannot %s %s - %s does not exist: %w",
			operation,
			path,
			dirpath.Base(path),
			ErrDirectoryNotFound,
		)
	}
	if err != nil {
		return db.Directory{}, fmt.Errorf("store.FindByPath: %w", err)
	}
	return directory, nil
}

// Move moves the directory at sourcePath with its subtree under targetPath.
// A directory which already exists at the destination of a moved directory is replaced.
func (service Service) Move(ctx context.Context, sourcePath, targetPath string) error {
	sourcePath, err := normalizePath("source path", sourcePath)
	if err != nil {
		return err
	}
	targetPath, err = normalizePath("target path", targetPath)
	if err != nil {
		return err
	}

	var newBase string
	err = service.store.Transaction(ctx, func(ctx context.Context) error {
		source, err := service.findDirectory(ctx, "move", sourcePath)
		if err != nil {
			return err
		}
		if dirpath.IsWithin(sourcePath, targetPath) {
			return fmt.Errorf("%w: cannot move %s into its own subtree %s", xerrors.ErrInvalidArgument, sourcePath, targetPath)
		}

		newBase = targetPath + dirpath.Separator + source.Name
		if newBase == sourcePath {
			// already under the target
			return nil
		}

		directories, err := service.store.FindAllWithin(ctx, sourcePath)
		if err != nil {
			return fmt.Errorf("store.FindAllWithin: %w", err)
		}
		sourcePaths := xslices.KeyBy(directories, func(directory db.Directory) string {
			return directory.Path
		})
		movedDirectories := xslices.Map(directories, func(directory db.Directory) db.Directory {
			directory.Path = dirpath.RewritePath(directory.Path, sourcePath, newBase)
			return directory
		})
		// A destination inside the moved subtree is vacated by the move itself.
		destinations := make([]string, 0, len(movedDirectories))
		for _, directory := range movedDirectories {
			if _, ok := sourcePaths[directory.Path]; ok {
				continue
			}
			destinations = append(destinations, directory.Path)
		}
		if err := service.store.BatchDeleteByPaths(ctx, destinations); err != nil {
			return fmt.Errorf("store.BatchDeleteByPaths: %w", err)
		}
		// shallower directories first, so that no path is taken by a directory not renamed yet
		slices.SortStableFunc(movedDirectories, func(a, b db.Directory) int {
			return cmp.Compare(dirpath.Depth(a.Path), dirpath.Depth(b.Path))
		})
		if err := service.store.BatchUpdatePaths(ctx, movedDirectories); err != nil {
			return fmt.Errorf("store.BatchUpdatePaths: %w", err)
		}

		if err := service.createAncestorChain(ctx, targetPath); err != nil {
			return fmt.Errorf("service.createAncestorChain: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store.Transaction: %w", err)
	}

	service.logger.InfoContext(ctx, "Moved a directory",
		"sourcePath", sourcePath,
		"targetPath", targetPath,
		"newPath", newBase,
	)
	return nil
}

// Delete deletes the directory at path with its subtree.
func (service Service) Delete(ctx context.Context, path string) error {
	path, err := normalizePath("path", path)
	if err != nil {
		return err
	}

	err = service.store.Transaction(ctx, func(ctx context.Context) error {
		if _, err := service.findDirectory(ctx, "delete", path); err != nil {
			return err
		}
		if err := service.store.DeleteWithin(ctx, path); err != nil {
			return fmt.Errorf("store.DeleteWithin: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store.Transaction: %w", err)
	}

	service.logger.InfoContext(ctx, "Deleted a directory", "path", path)
	return nil
}

// List returns all directories in ascending order of their paths, so that every
// ancestor comes before its descendants.
func (service Service) List(ctx context.Context) ([]db.Directory, error) {
	directories, err := service.store.FindAllOrderByPath(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.FindAllOrderByPath: %w", err)
	}
	return directories, nil
}

func (service Service) ReadTree(ctx context.Context) ([]*Node, error) {
	directories, err := service.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(directories), nil
}

func (service Service) RenderTree(ctx context.Context) (string, error) {
	roots, err := service.ReadTree(ctx)
	if err != nil {
		return "", err
	}
	return RenderForest(roots), nil
}
