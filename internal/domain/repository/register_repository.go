package repository

import (
	"context"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
)

// RegisterRepository loads the two pre-processed dataset tables. Both
// loads happen once at startup; the returned slices are read-only for
// the rest of the process lifetime.
type RegisterRepository interface {
	// LoadTradeRegister returns all trade register rows sorted
	// ascending by (supplier, delivery year start).
	LoadTradeRegister(ctx context.Context) ([]entity.TradeRecord, error)

	// LoadImporterRanks returns the per-period importer rank rows.
	LoadImporterRanks(ctx context.Context) ([]entity.ImporterRank, error)

	Close() error
}
