package db

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/michael-freling/dirtree/internal/config"
	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite" // Sqlite driver based on CGO
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

// batchSize bounds the number of rows or values of one statement,
// since sqlite rejects a statement with more than 32766 variables.
const batchSize = 1000

type Client struct {
	connection *gorm.DB
}

type clientOptions struct {
	gormLogger logger.Interface
}

type ClientOption func(*clientOptions)

func WithNopLogger() ClientOption {
	return func(c *clientOptions) {
		c.gormLogger = logger.Discard
	}
}

func WithGormLogger(l *slog.Logger) ClientOption {
	return func(c *clientOptions) {
		c.gormLogger = slogGorm.New(
			slogGorm.WithHandler(l.Handler()),
			slogGorm.WithTraceAll(), // trace all messages
		)
	}
}

type DSN string

func DSNFromFilePath(directory string, filename string) DSN {
	return DSN(
		fmt.Sprintf("file:%s?cache=shared",
			filepath.Join(directory, filename),
		),
	)
}

// DSNMemoryWithName returns a DSN of an in-memory database which is shared only by
// connections opened with the same name.
func DSNMemoryWithName(name string) DSN {
	return DSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
}

func (dsn DSN) String() string {
	return string(dsn)
}

func FromConfig(conf config.Config, logger *slog.Logger) (*Client, error) {
	dbFile := DSNFromFilePath(conf.DataDirectory,
		fmt.Sprintf("%s_v1.sqlite", conf.Environment),
	)
	logger.Info("Connecting to a DB", "dbFile", dbFile)

	if conf.Environment == config.EnvironmentDevelopment {
		return NewClient(dbFile, WithGormLogger(logger))
	}
	return NewClient(dbFile, WithNopLogger())
}

func NewClient(dsn DSN, options ...ClientOption) (*Client, error) {
	opts := clientOptions{}
	for _, option := range options {
		option(&opts)
	}

	connection, err := gorm.Open(sqlite.Open(dsn.String()), &gorm.Config{
		Logger:                                   opts.gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}

	return &Client{
		connection: connection,
	}, nil
}

func (client *Client) Close() error {
	sqlDB, err := client.connection.DB()
	if err != nil {
		return fmt.Errorf("connection.DB: %w", err)
	}
	return sqlDB.Close()
}

func (client *Client) Migrate() error {
	if err := client.connection.AutoMigrate(
		&Directory{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return nil
}

// connectionFromContext returns a transaction started by NewTransaction if ctx carries one.
func (client *Client) connectionFromContext(ctx context.Context) *gorm.DB {
	if tx := transactionFromContext(ctx); tx != nil {
		return tx
	}
	return client.connection.WithContext(ctx)
}

// BatchCreate inserts values in batches of batchSize rows.
func BatchCreate[Model any](client *Client, values []Model) error {
	return client.connection.CreateInBatches(values, batchSize).Error
}
