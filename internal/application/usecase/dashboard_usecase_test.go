package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/internal/shared/types"
)

type stubRegisterRepo struct {
	records []entity.TradeRecord
	ranks   []entity.ImporterRank
	err     error

	loadCalls int
}

func (s *stubRegisterRepo) LoadTradeRegister(ctx context.Context) ([]entity.TradeRecord, error) {
	s.loadCalls++
	return s.records, s.err
}

func (s *stubRegisterRepo) LoadImporterRanks(ctx context.Context) ([]entity.ImporterRank, error) {
	return s.ranks, s.err
}

func (s *stubRegisterRepo) Close() error { return nil }

func TestDashboardUseCaseLoadDatasetIsIdempotent(t *testing.T) {
	repo := &stubRegisterRepo{records: testRecords(), ranks: testRanks()}
	uc := NewDashboardUseCase(repo, nil, nil, DefaultFlowOptions())

	require.NoError(t, uc.LoadDataset(context.Background()))
	require.NoError(t, uc.LoadDataset(context.Background()))
	assert.Equal(t, 1, repo.loadCalls)
	assert.Equal(t, len(repo.records), uc.RecordCount())
}

func TestDashboardUseCaseLoadDatasetPropagatesErrors(t *testing.T) {
	wantErr := errors.New("no such table")
	repo := &stubRegisterRepo{err: wantErr}
	uc := NewDashboardUseCase(repo, nil, nil, DefaultFlowOptions())

	err := uc.LoadDataset(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.Zero(t, uc.RecordCount())
}

func TestDashboardUseCaseLoadDatasetRejectsEmptyRegister(t *testing.T) {
	repo := &stubRegisterRepo{ranks: testRanks()}
	uc := NewDashboardUseCase(repo, nil, nil, DefaultFlowOptions())

	err := uc.LoadDataset(context.Background())
	assert.ErrorIs(t, err, types.ErrEmptyRegister)
}

func TestDashboardUseCaseBuildView(t *testing.T) {
	repo := &stubRegisterRepo{records: testRecords(), ranks: testRanks()}
	uc := NewDashboardUseCase(repo, nil, nil, DefaultFlowOptions())
	require.NoError(t, uc.LoadDataset(context.Background()))

	view := uc.BuildView(entity.Range2014to21, "dark", 5)

	assert.Equal(t, entity.Range2014to21, view.Selector)
	assert.Equal(t, "dark", view.Map.Style)

	// Czechia 2014 and Germany 2021 survive the filter; both USA rows
	// and the Poland 2022 row do not.
	require.Len(t, view.Records, 2)
	assert.Equal(t, "Czechia", view.Records[0].Supplier)
	assert.Equal(t, "Germany", view.Records[1].Supplier)

	assert.Equal(t, 2, view.Metrics.SupplierCount)
	assert.Equal(t, int64(9), view.Metrics.TotalDelivered)
	require.True(t, view.Metrics.HasRank())
	assert.Equal(t, 14, *view.Metrics.Rank)

	require.Len(t, view.Map.Arcs, 2)
	assert.Equal(t, "Delivered Weapons by Country (Top 5)", view.Rankings.ByCountry.Title)
}

func TestDashboardUseCaseBuildViewAllSelector(t *testing.T) {
	repo := &stubRegisterRepo{records: testRecords(), ranks: testRanks()}
	uc := NewDashboardUseCase(repo, nil, nil, DefaultFlowOptions())
	require.NoError(t, uc.LoadDataset(context.Background()))

	view := uc.BuildView(entity.RangeAll, "", 0)

	assert.Len(t, view.Records, len(repo.records))
	assert.Equal(t, "light", view.Map.Style)
	assert.False(t, view.Metrics.HasRank())
}

func TestDashboardUseCaseTwoSupplierScenario(t *testing.T) {
	repo := &stubRegisterRepo{
		records: []entity.TradeRecord{
			{Supplier: "A", TIVDelivered: 100, DeliveryNumber: 5, DeliveryYearStart: 2015},
			{Supplier: "B", TIVDelivered: 10, DeliveryNumber: 3, DeliveryYearStart: 2023},
		},
		ranks: testRanks(),
	}
	uc := NewDashboardUseCase(repo, nil, nil, DefaultFlowOptions())
	require.NoError(t, uc.LoadDataset(context.Background()))

	view := uc.BuildView(entity.Range2014to21, "", 0)

	require.Len(t, view.Records, 1)
	assert.Equal(t, "A", view.Records[0].Supplier)

	require.Len(t, view.Rankings.ByCountry.Entries, 1)
	assert.Equal(t, entity.RankingEntry{Label: "A", Total: 5}, view.Rankings.ByCountry.Entries[0])

	assert.Equal(t, 1, view.Metrics.SupplierCount)
	assert.Equal(t, int64(5), view.Metrics.TotalDelivered)

	require.Len(t, view.Map.Arcs, 1)
	assert.InDelta(t, 0.5, view.Map.Arcs[0].Width, 1e-9)
}

func TestNormalizeMapStyle(t *testing.T) {
	assert.Equal(t, "dark", NormalizeMapStyle("dark"))
	assert.Equal(t, "light", NormalizeMapStyle("light"))
	assert.Equal(t, "light", NormalizeMapStyle(""))
	assert.Equal(t, "light", NormalizeMapStyle("satellite"))
}
