package repository

import (
	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
)

// ExportRepository writes a dashboard view to report files.
type ExportRepository interface {
	ExportToCSV(view entity.DashboardView, filename string, outputDir string) (string, error)
	ExportToJSON(view entity.DashboardView, filename string, outputDir string) (string, error)
	ExportToPDF(view entity.DashboardView, filename string, outputDir string) (string, error)
}
