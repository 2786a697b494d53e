package usecase

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/internal/domain/repository"
	"github.com/dkovtun/arms-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality: it owns
// the one-time dataset load and derives every view from it.
type DashboardUseCase struct {
	registerRepo repository.RegisterRepository
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface

	flowOpts FlowOptions

	register []entity.TradeRecord
	ranks    []entity.ImporterRank
	loaded   bool
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	registerRepo repository.RegisterRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	flowOpts FlowOptions,
) *DashboardUseCase {
	return &DashboardUseCase{
		registerRepo: registerRepo,
		exportRepo:   exportRepo,
		console:      console,
		flowOpts:     flowOpts,
	}
}

// LoadDataset reads both tables through the register repository. The
// dataset is assumed valid and pre-processed; any load failure is
// fatal to the caller. Loading twice is a no-op.
func (uc *DashboardUseCase) LoadDataset(ctx context.Context) error {
	if uc.loaded {
		return nil
	}

	register, err := uc.registerRepo.LoadTradeRegister(ctx)
	if err != nil {
		return fmt.Errorf("loading trade register: %w", err)
	}
	if len(register) == 0 {
		return types.ErrEmptyRegister
	}
	ranks, err := uc.registerRepo.LoadImporterRanks(ctx)
	if err != nil {
		return fmt.Errorf("loading importer ranks: %w", err)
	}

	uc.register = register
	uc.ranks = ranks
	uc.loaded = true
	return nil
}

// RecordCount returns the number of loaded register rows.
func (uc *DashboardUseCase) RecordCount() int {
	return len(uc.register)
}

// BuildView runs the full pure pipeline for one selector: filter, then
// flow map, rankings, metrics and the table projection, all derived
// independently from the filtered set.
func (uc *DashboardUseCase) BuildView(selector entity.YearRange, mapStyle string, topN int) entity.DashboardView {
	filtered := FilterByDeliveryYear(uc.register, selector)

	opts := uc.flowOpts
	opts.Style = NormalizeMapStyle(mapStyle)

	rows := make([]entity.RecordRow, 0, len(filtered))
	for _, record := range filtered {
		rows = append(rows, record.Project())
	}

	return entity.DashboardView{
		Selector: selector,
		Metrics:  ComputeMetrics(filtered, uc.ranks, selector),
		Map:      BuildFlowMap(filtered, opts),
		Rankings: BuildRankings(filtered, topN),
		Records:  rows,
	}
}

// RunDashboard executes the terminal dashboard: load, build the view
// for the requested selector and render metrics, ranking charts and
// the record table. Reports are exported when a report name is set.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	status := uc.console.Status("Loading trade register dataset...")
	if err := uc.LoadDataset(ctx); err != nil {
		status.Stop()
		return err
	}
	status.Update("Building dashboard view...")

	selector := entity.ParseYearRange(args.YearRange)
	view := uc.BuildView(selector, args.MapStyle, args.TopN)
	status.Stop()

	uc.renderMetrics(view)
	uc.renderRankings(view.Rankings)
	uc.renderRecords(view.Records)
	uc.renderFlowSummary(view.Map)

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(view, args)
	}
	return nil
}

func (uc *DashboardUseCase) renderMetrics(view entity.DashboardView) {
	uc.console.Println()
	uc.console.DisplayMetric("Delivery Year Range", string(view.Selector))
	uc.console.DisplayMetric("Number of Countries", fmt.Sprintf("%d", view.Metrics.SupplierCount))
	uc.console.DisplayMetric("Number of Weapons Delivered", view.Metrics.TotalDeliveredLabel)
	if view.Metrics.HasRank() {
		uc.console.DisplayMetric("Ukraine's Global Importer Rank", fmt.Sprintf("%d", *view.Metrics.Rank))
		uc.console.DisplayMetric("Share of Global Weapons Imports", view.Metrics.ShareLabel)
	}
	uc.console.Println()
}

func (uc *DashboardUseCase) renderRankings(rankings entity.RankingSet) {
	for _, view := range []entity.RankingView{
		rankings.ByCountry,
		rankings.ByCategory,
		rankings.ByCategoryTIV,
	} {
		bars := make([]types.RankingBar, 0, len(view.Entries))
		// Largest bar first on the terminal; the stored order keeps
		// the ascending bar-chart convention.
		for i := len(view.Entries) - 1; i >= 0; i-- {
			bars = append(bars, types.RankingBar{Label: view.Entries[i].Label, Total: view.Entries[i].Total})
		}
		uc.console.DisplayRankingBars(view.Title, bars)
	}
}

func (uc *DashboardUseCase) renderRecords(rows []entity.RecordRow) {
	table := uc.console.CreateTable()
	for _, column := range entity.RecordColumns {
		table.AddColumn(column)
	}
	for _, row := range rows {
		table.AddRow(
			row.Supplier,
			fmt.Sprintf("%d", row.DeliveryYearStart),
			fmt.Sprintf("%d", row.DeliveryYearEnd),
			row.WeaponDesignation,
			row.WeaponCategory,
			row.Company,
			row.CountryOfOrigin,
			fmt.Sprintf("%.2f", row.TIVDelivered),
		)
	}
	uc.console.Print(table.Render())
	uc.console.Println()
}

func (uc *DashboardUseCase) renderFlowSummary(flowMap entity.FlowMap) {
	if len(flowMap.Arcs) == 0 {
		uc.console.LogWarning("No supplier flows for the selected year range")
		return
	}
	uc.console.LogInfo("Flow map: %d supplier arcs into %s (%s), style %s",
		len(flowMap.Arcs), flowMap.Destination.Label, flowMap.Destination.Capital,
		pterm.FgCyan.Sprint(flowMap.Style))
}

func (uc *DashboardUseCase) exportReports(view entity.DashboardView, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", path)
			}
		default:
			uc.console.LogWarning("%v: '%s'", types.ErrUnknownReportType, reportType)
		}
	}
}

// NormalizeMapStyle validates a user-supplied map style, falling back
// to light for anything that is not a known theme.
func NormalizeMapStyle(style string) string {
	if style == "dark" {
		return "dark"
	}
	return "light"
}
