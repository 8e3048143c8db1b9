package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/michael-freling/dirtree/internal/config"
	"github.com/michael-freling/dirtree/internal/db"
	"github.com/michael-freling/dirtree/internal/directory"
)

type application struct {
	config   config.Config
	logger   *slog.Logger
	dbClient *db.Client
	service  *directory.Service

	logFile *os.File
}

func newLogger(conf config.Config) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(conf.LogDirectory, 0755); err != nil {
		return nil, nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	logFilePath := filepath.Join(conf.LogDirectory, string(conf.Environment)+".log")
	file, err := os.OpenFile(
		logFilePath,
		os.O_RDWR|os.O_APPEND|os.O_CREATE,
		0644,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("os.OpenFile: %w", err)
	}

	// stdout is kept for outputs of commands
	var slogHandler slog.Handler
	if conf.Environment == config.EnvironmentDevelopment {
		slogHandler = slog.NewJSONHandler(
			io.MultiWriter(os.Stderr, file),
			&slog.HandlerOptions{
				Level: slog.LevelDebug,
			},
		)
	} else {
		slogHandler = slog.NewJSONHandler(
			file,
			&slog.HandlerOptions{
				Level: slog.LevelInfo,
			},
		)
	}
	logger := slog.New(slogHandler)
	slog.SetDefault(logger)
	return logger, file, nil
}

func newApplication(configPath string) (*application, error) {
	conf, err := config.ReadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.ReadConfig: %w", err)
	}
	logger, logFile, err := newLogger(conf)
	if err != nil {
		return nil, fmt.Errorf("newLogger: %w", err)
	}

	if err := os.MkdirAll(conf.DataDirectory, 0755); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}
	dbClient, err := db.FromConfig(conf, logger)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("db.FromConfig: %w", err)
	}
	if err := dbClient.Migrate(); err != nil {
		dbClient.Close()
		logFile.Close()
		return nil, fmt.Errorf("dbClient.Migrate: %w", err)
	}

	return &application{
		config:   conf,
		logger:   logger,
		dbClient: dbClient,
		service:  directory.NewService(logger, dbClient.Directory()),
		logFile:  logFile,
	}, nil
}

func (app *application) Close() error {
	if err := app.dbClient.Close(); err != nil {
		return fmt.Errorf("dbClient.Close: %w", err)
	}
	return app.logFile.Close()
}
