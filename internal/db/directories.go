package db

import (
	"context"
	"slices"

	"github.com/michael-freling/dirtree/internal/dirpath"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Directory is an entry of the namespace. The hierarchy is derived from Path only.
type Directory struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Path string `gorm:"uniqueIndex;not null"`
}

type DirectoryClient struct {
	client *Client
}

func (client *Client) Directory() *DirectoryClient {
	return &DirectoryClient{
		client: client,
	}
}

func (client *DirectoryClient) connection(ctx context.Context) *gorm.DB {
	return client.client.connectionFromContext(ctx)
}

func (client *DirectoryClient) Transaction(ctx context.Context, f func(context.Context) error) error {
	return NewTransaction(ctx, client.client, f)
}

func (client *DirectoryClient) FindByPath(ctx context.Context, path string) (Directory, error) {
	var directory Directory
	err := client.connection(ctx).
		Where("path = ?", path).
		Take(&directory).
		Error
	return directory, err
}

// withinPath restricts a query to path itself and all of its descendants.
func withinPath(db *gorm.DB, path string) *gorm.DB {
	lower, upper := dirpath.DescendantRange(path)
	return db.Where("path = ? OR (path >= ? AND path < ?)", path, lower, upper)
}

func (client *DirectoryClient) FindAllWithin(ctx context.Context, path string) ([]Directory, error) {
	var directories []Directory
	err := withinPath(client.connection(ctx), path).
		Order("path asc").
		Find(&directories).
		Error
	return directories, err
}

func (client *DirectoryClient) FindAllOrderByPath(ctx context.Context) ([]Directory, error) {
	var directories []Directory
	err := client.connection(ctx).
		Order("path asc").
		Find(&directories).
		Error
	return directories, err
}

func (client *DirectoryClient) BatchCreateIgnoreExisting(ctx context.Context, directories []Directory) error {
	if len(directories) == 0 {
		return nil
	}
	return client.Transaction(ctx, func(ctx context.Context) error {
		for chunk := range slices.Chunk(directories, batchSize) {
			err := client.connection(ctx).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "path"}},
					DoNothing: true,
				}).
				Create(&chunk).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// BatchUpdatePaths rewrites the path of each directory identified by its ID.
func (client *DirectoryClient) BatchUpdatePaths(ctx context.Context, directories []Directory) error {
	return client.Transaction(ctx, func(ctx context.Context) error {
		connection := client.connection(ctx)
		for _, directory := range directories {
			err := connection.Model(&Directory{}).
				Where("id = ?", directory.ID).
				Update("path", directory.Path).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (client *DirectoryClient) BatchDeleteByPaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	return client.Transaction(ctx, func(ctx context.Context) error {
		for chunk := range slices.Chunk(paths, batchSize) {
			err := client.connection(ctx).
				Where("path IN ?", chunk).
				Delete(&Directory{}).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (client *DirectoryClient) DeleteWithin(ctx context.Context, path string) error {
	return withinPath(client.connection(ctx), path).
		Delete(&Directory{}).
		Error
}
