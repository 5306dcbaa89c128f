// Package factory selects the store driver declared in configuration.
package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mindful-labs/mood-tracker/internal/config"
	storepkg "github.com/mindful-labs/mood-tracker/internal/store"
	storecsv "github.com/mindful-labs/mood-tracker/internal/store/csv"
	storepg "github.com/mindful-labs/mood-tracker/internal/store/postgres"
	storesqlite "github.com/mindful-labs/mood-tracker/internal/store/sqlite"
)

// NewStore selects the store adapter based on cfg.StoreDriver. The returned
// store still needs Init before first use.
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.StoreDriver {
	case "csv":
		log.Debug().Str("path", cfg.CSVPath).Msg("using csv store")
		return storecsv.New(cfg.CSVPath), nil
	case "sqlite":
		log.Debug().Str("path", cfg.SQLitePath).Msg("using sqlite store")
		return storesqlite.New(cfg.SQLitePath)
	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return storepg.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}
