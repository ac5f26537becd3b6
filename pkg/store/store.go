package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/clients/airtable"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/clients/postgres"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/clients/supabase"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/config"
)

// Inserter is the only capability the service needs from the external
// data store: a create-only insert of one row into a named collection.
type Inserter interface {
	Insert(ctx context.Context, collection string, record map[string]any) error
}

// New connects the backend selected in the configuration. The returned
// close function releases backend resources and is safe to call once.
func New(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (Inserter, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendSupabase:
		log.Info("Using Supabase store", zap.String("url", cfg.SupabaseEndpoint()))
		return supabase.NewClient(cfg.SupabaseEndpoint(), cfg.SupabaseKey(), log), noop, nil

	case config.BackendPostgres:
		pool, err := postgres.NewConnection(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, noop, err
		}
		return postgres.NewClient(pool, log), pool.Close, nil

	case config.BackendAirtable:
		log.Info("Using Airtable store", zap.String("base", cfg.AirtableBaseID))
		return airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID, log), noop, nil

	case config.BackendMemory:
		log.Warn("Using in-memory store, submissions are not persisted")
		return NewMemoryStore(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
