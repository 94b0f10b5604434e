package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"github.com/aussiebroadwan/memorylane/internal/memories/store/drivers/mongo"
	"github.com/aussiebroadwan/memorylane/internal/memories/store/drivers/sqlite"
)

// OpenStore connects the configured driver and applies its migrations.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch cfg.StoreDriver {
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		st, err = sqlite.NewStore(dsn)
	case DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		st, err = mongo.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, &ConfigurationError{Field: "STORE_DRIVER", Reason: fmt.Sprintf("unknown driver %q", cfg.StoreDriver)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}

	if err := st.ApplyMigrations(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply %s migrations: %w", cfg.StoreDriver, err)
	}

	logger.Info("store ready", "driver", cfg.StoreDriver)
	return st, nil
}
