package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
)

func TestPublisherPublish(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site", "data")
	publisher := NewPublisher(outDir)

	views := []entity.DashboardView{
		{Selector: entity.RangeAll, Metrics: entity.SummaryMetrics{SupplierCount: 3}},
		{Selector: entity.Range2014to21, Metrics: entity.SummaryMetrics{SupplierCount: 1}},
		{Selector: entity.Range2022to24, Metrics: entity.SummaryMetrics{SupplierCount: 2}},
	}

	written, err := publisher.Publish(views)
	require.NoError(t, err)
	require.Len(t, written, 4)

	assert.FileExists(t, filepath.Join(outDir, "view_all.json"))
	assert.FileExists(t, filepath.Join(outDir, "view_2014-2021.json"))
	assert.FileExists(t, filepath.Join(outDir, "view_2022-2024.json"))

	data, err := os.ReadFile(filepath.Join(outDir, "view_2022-2024.json"))
	require.NoError(t, err)
	var view entity.DashboardView
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, entity.Range2022to24, view.Selector)
	assert.Equal(t, 2, view.Metrics.SupplierCount)

	data, err = os.ReadFile(filepath.Join(outDir, "meta.json"))
	require.NoError(t, err)
	var meta metaFile
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.NotEmpty(t, meta.GeneratedAt)
	assert.Equal(t, []string{"All", "2014-2021", "2022-2024"}, meta.Selectors)
	assert.Equal(t, []string{"view_all.json", "view_2014-2021.json", "view_2022-2024.json"}, meta.Views)
}

func TestPublisherPublishEmpty(t *testing.T) {
	outDir := t.TempDir()
	written, err := NewPublisher(outDir).Publish(nil)
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.FileExists(t, filepath.Join(outDir, "meta.json"))
}
