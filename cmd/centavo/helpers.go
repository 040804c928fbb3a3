package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/lucasvieira/centavo/internal/common"
	"github.com/lucasvieira/centavo/internal/config"
	"github.com/lucasvieira/centavo/internal/service"
	"github.com/lucasvieira/centavo/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/centavo/centavo.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open the database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		common.LogError(err, "migration failed", common.Fields{"path": dbPath})
		return nil, common.NewUserError("failed to migrate the database", err)
	}

	return store, nil
}

func currentUser() string {
	return viper.GetString("user")
}
