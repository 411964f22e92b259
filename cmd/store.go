package cmd

import (
	"context"

	"cropai-modelhub/config"
	"cropai-modelhub/internal/database"
	"cropai-modelhub/internal/services"
	"cropai-modelhub/internal/store"
)

type documentStore interface {
	services.DocumentStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// openStore connects the document store selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (documentStore, error) {
	if cfg.StoreDriver == config.StoreDriverMongo {
		ms, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return ms, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return store.NewSQLStore(db), nil
}
