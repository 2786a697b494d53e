package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/internal/domain/repository"
)

// SQLiteRepository loads the pre-processed dataset from a SQLite
// database holding the trade_register and importer_rank tables. The
// dataset is produced upstream; this adapter only reads it.
type SQLiteRepository struct {
	db *sql.DB
}

var _ repository.RegisterRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens the dataset at path. Paths of the form
// s3://bucket/key are downloaded to a temp file first.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("store: dataset path is required")
	}

	localPath, err := localizeDataset(ctx, path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", localPath)
	if err != nil {
		return nil, fmt.Errorf("store: opening dataset %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: dataset %s is not readable: %w", path, err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// LoadTradeRegister returns every register row, sorted ascending by
// (supplier, delivery year start).
func (r *SQLiteRepository) LoadTradeRegister(ctx context.Context) ([]entity.TradeRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT supplier, delivery_year_start, delivery_year_end,
		       weapon_designation, weapon_category, company,
		       country_of_origin, sipri_tiv, delivery_number,
		       supplier_capital, capital_lat, capital_lon
		FROM trade_register
		ORDER BY supplier ASC, delivery_year_start ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: querying trade_register: %w", err)
	}
	defer rows.Close()

	records := make([]entity.TradeRecord, 0)
	for rows.Next() {
		var record entity.TradeRecord
		if err := rows.Scan(
			&record.Supplier,
			&record.DeliveryYearStart,
			&record.DeliveryYearEnd,
			&record.WeaponDesignation,
			&record.WeaponCategory,
			&record.Company,
			&record.CountryOfOrigin,
			&record.TIVDelivered,
			&record.DeliveryNumber,
			&record.SupplierCapital,
			&record.CapitalLat,
			&record.CapitalLon,
		); err != nil {
			return nil, fmt.Errorf("store: scanning trade_register row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: reading trade_register: %w", err)
	}
	return records, nil
}

// LoadImporterRanks returns the per-period importer rank rows.
func (r *SQLiteRepository) LoadImporterRanks(ctx context.Context) ([]entity.ImporterRank, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT period, rank, share_of_global_arms_imports
		FROM importer_rank
	`)
	if err != nil {
		return nil, fmt.Errorf("store: querying importer_rank: %w", err)
	}
	defer rows.Close()

	ranks := make([]entity.ImporterRank, 0)
	for rows.Next() {
		var rank entity.ImporterRank
		if err := rows.Scan(&rank.Period, &rank.Rank, &rank.Share); err != nil {
			return nil, fmt.Errorf("store: scanning importer_rank row: %w", err)
		}
		ranks = append(ranks, rank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: reading importer_rank: %w", err)
	}
	return ranks, nil
}
