package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new ExportRepository implementation.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the view as a sectioned CSV report: metrics,
// the three ranking views, then the projected record table.
func (r *ExportRepositoryImpl) ExportToCSV(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Metric", "Value"})
	writer.Write([]string{"Delivery Year Range", string(view.Selector)})
	writer.Write([]string{"Number of Countries", fmt.Sprintf("%d", view.Metrics.SupplierCount)})
	writer.Write([]string{"Number of Weapons Delivered", view.Metrics.TotalDeliveredLabel})
	if view.Metrics.HasRank() {
		writer.Write([]string{"Ukraine's Global Importer Rank", fmt.Sprintf("%d", *view.Metrics.Rank)})
		writer.Write([]string{"Share of Global Weapons Imports", view.Metrics.ShareLabel})
	}
	writer.Write([]string{})

	for _, ranking := range []entity.RankingView{
		view.Rankings.ByCountry,
		view.Rankings.ByCategory,
		view.Rankings.ByCategoryTIV,
	} {
		writer.Write([]string{ranking.Title})
		writer.Write([]string{"Label", "Total"})
		for _, entry := range ranking.Entries {
			writer.Write([]string{entry.Label, fmt.Sprintf("%.2f", entry.Total)})
		}
		writer.Write([]string{})
	}

	writer.Write(entity.RecordColumns)
	for _, row := range view.Records {
		writer.Write([]string{
			row.Supplier,
			fmt.Sprintf("%d", row.DeliveryYearStart),
			fmt.Sprintf("%d", row.DeliveryYearEnd),
			row.WeaponDesignation,
			row.WeaponCategory,
			row.Company,
			row.CountryOfOrigin,
			fmt.Sprintf("%.2f", row.TIVDelivered),
		})
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON writes the full view document.
func (r *ExportRepositoryImpl) ExportToJSON(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(view); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF writes a printable report: metrics summary, the three
// ranking views and the record table.
func (r *ExportRepositoryImpl) ExportToPDF(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Weapons Transferred to Ukraine"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Delivery Year Range: %s", view.Selector)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Summary Metrics")
	pdf.MultiCell(190, 5, tr(fmt.Sprintf("Number of Countries: %d", view.Metrics.SupplierCount)), "", "L", false)
	pdf.MultiCell(190, 5, tr(fmt.Sprintf("Number of Weapons Delivered: %s", view.Metrics.TotalDeliveredLabel)), "", "L", false)
	if view.Metrics.HasRank() {
		pdf.MultiCell(190, 5, tr(fmt.Sprintf("Ukraine's Global Importer Rank: %d", *view.Metrics.Rank)), "", "L", false)
		pdf.MultiCell(190, 5, tr(fmt.Sprintf("Share of Global Weapons Imports: %s", view.Metrics.ShareLabel)), "", "L", false)
	}
	pdf.Ln(8)

	for _, ranking := range []entity.RankingView{
		view.Rankings.ByCountry,
		view.Rankings.ByCategory,
		view.Rankings.ByCategoryTIV,
	} {
		sectionTitle(ranking.Title)
		// Largest values first on paper.
		for i := len(ranking.Entries) - 1; i >= 0; i-- {
			entry := ranking.Entries[i]
			pdf.MultiCell(190, 5, tr(fmt.Sprintf("%s: %.2f", entry.Label, entry.Total)), "", "L", false)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()
	sectionTitle("Trade Register")
	pdf.SetFont("Arial", "", 8)
	for _, row := range view.Records {
		line := fmt.Sprintf("%s | %d-%d | %s | %s | %s | %s | %.2f",
			row.Supplier, row.DeliveryYearStart, row.DeliveryYearEnd,
			row.WeaponDesignation, row.WeaponCategory, row.Company,
			row.CountryOfOrigin, row.TIVDelivered)
		pdf.MultiCell(190, 4, tr(line), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename creates a unique timestamped filename and ensures
// the output directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
