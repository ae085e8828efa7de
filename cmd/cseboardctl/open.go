package main

import (
	"context"
	"fmt"

	"cseboard/config"
	"cseboard/internal/customer"
	"cseboard/internal/customer/repository/sqlstore"
	"cseboard/internal/customer/usecase"
	"cseboard/pkg/database"
	"cseboard/pkg/log"
)

// openFunc builds the use case the commands run against and a func that
// releases its resources.
type openFunc func(ctx context.Context, configPath string) (customer.UseCase, func() error, error)

func openUseCase(ctx context.Context, configPath string) (customer.UseCase, func() error, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	// Console output belongs to the command; only warnings go to the log.
	l := log.Init(log.ZapConfig{
		Level:      "warn",
		Mode:       cfg.Logger.Mode,
		Encoding:   cfg.Logger.Encoding,
		FileDir:    cfg.Logger.FileDir,
		FilePrefix: cfg.Logger.FilePrefix,
	})

	db, err := database.Open(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	repo, err := sqlstore.New(db, l, sqlstore.Options{
		Driver: cfg.Database.Driver,
		Table:  cfg.Database.Table,
	})
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return usecase.New(repo, l, usecase.Options{}), db.Close, nil
}
