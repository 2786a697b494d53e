package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/internal/shared/types"
)

func TestBuildFlowMapAggregatesBySupplier(t *testing.T) {
	records := []entity.TradeRecord{
		{Supplier: "Germany", TIVDelivered: 100, SupplierCapital: "Berlin", CapitalLat: 52.52, CapitalLon: 13.405},
		{Supplier: "Germany", TIVDelivered: 50, SupplierCapital: "Bonn", CapitalLat: 50.73, CapitalLon: 7.1},
		{Supplier: "Poland", TIVDelivered: 10, SupplierCapital: "Warsaw", CapitalLat: 52.23, CapitalLon: 21.01},
	}

	fm := BuildFlowMap(records, DefaultFlowOptions())
	require.Len(t, fm.Arcs, 2)

	germany := fm.Arcs[0]
	assert.Equal(t, "Germany", germany.Supplier)
	assert.InDelta(t, 150, germany.TotalTIV, 1e-9)
	// First observed capital wins when the dataset disagrees.
	assert.Equal(t, "Berlin", germany.Capital)
	assert.InDelta(t, 52.52, germany.SourceLat, 1e-9)
	assert.InDelta(t, 13.405, germany.SourceLon, 1e-9)

	poland := fm.Arcs[1]
	assert.Equal(t, "Poland", poland.Supplier)
	assert.InDelta(t, 10, poland.TotalTIV, 1e-9)
}

func TestBuildFlowMapWidthsAndColors(t *testing.T) {
	opts := DefaultFlowOptions()
	records := []entity.TradeRecord{
		{Supplier: "A", TIVDelivered: 1},
		{Supplier: "B", TIVDelivered: 100},
		{Supplier: "C", TIVDelivered: 10000},
	}

	fm := BuildFlowMap(records, opts)
	require.Len(t, fm.Arcs, 3)

	// Smallest total gets the minimum width and the base color,
	// largest gets the maximum width and the high color.
	assert.InDelta(t, opts.WidthMin, fm.Arcs[0].Width, 1e-9)
	assert.Equal(t, opts.BaseColor, fm.Arcs[0].Color)
	assert.InDelta(t, opts.WidthMax, fm.Arcs[2].Width, 1e-9)
	assert.Equal(t, opts.HighColor, fm.Arcs[2].Color)

	// Midpoint of the log scale: gamma 3 pulls the width toward the
	// minimum while the color stays at the linear midpoint.
	mid := fm.Arcs[1]
	wantWidth := opts.WidthMin + (opts.WidthMax-opts.WidthMin)*math.Pow(0.5, opts.Gamma)
	assert.InDelta(t, wantWidth, mid.Width, 1e-9)
	assert.Equal(t, entity.RGB{32, 116, 176}, mid.Color)

	// Widths are monotone in total TIV.
	assert.Less(t, fm.Arcs[0].Width, fm.Arcs[1].Width)
	assert.Less(t, fm.Arcs[1].Width, fm.Arcs[2].Width)
}

func TestBuildFlowMapDegenerateTotals(t *testing.T) {
	opts := DefaultFlowOptions()

	tests := []struct {
		name    string
		records []entity.TradeRecord
	}{
		{"single supplier", []entity.TradeRecord{
			{Supplier: "A", TIVDelivered: 42},
		}},
		{"all totals tied", []entity.TradeRecord{
			{Supplier: "A", TIVDelivered: 7},
			{Supplier: "B", TIVDelivered: 7},
		}},
		{"zero total", []entity.TradeRecord{
			{Supplier: "A", TIVDelivered: 0},
			{Supplier: "B", TIVDelivered: 5},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := BuildFlowMap(tt.records, opts)
			require.Len(t, fm.Arcs, len(tt.records))
			for _, arc := range fm.Arcs {
				assert.False(t, math.IsNaN(arc.Width), "width must be finite")
				assert.False(t, math.IsInf(arc.Width, 0), "width must be finite")
				assert.GreaterOrEqual(t, arc.Width, opts.WidthMin)
				assert.LessOrEqual(t, arc.Width, opts.WidthMax)
				for _, ch := range arc.Color {
					assert.GreaterOrEqual(t, ch, 0)
					assert.LessOrEqual(t, ch, 255)
				}
			}
		})
	}
}

func TestBuildFlowMapEmptyInput(t *testing.T) {
	opts := DefaultFlowOptions()
	fm := BuildFlowMap(nil, opts)

	assert.Empty(t, fm.Arcs)
	assert.Empty(t, fm.Suppliers)
	// The destination marker renders even with nothing to plot.
	assert.Equal(t, "Ukraine", fm.Destination.Label)
	assert.InDelta(t, 50.4501, fm.Destination.Lat, 1e-9)
	assert.InDelta(t, 30.5234, fm.Destination.Lon, 1e-9)
}

func TestBuildFlowMapMarkersAndView(t *testing.T) {
	fm := BuildFlowMap([]entity.TradeRecord{
		{Supplier: "USA", TIVDelivered: 9, SupplierCapital: "Washington, D.C.", CapitalLat: 38.9, CapitalLon: -77.04},
	}, DefaultFlowOptions())

	require.Len(t, fm.Suppliers, 1)
	marker := fm.Suppliers[0]
	assert.Equal(t, "USA", marker.Label)
	assert.InDelta(t, 50000, marker.Radius, 1e-9)
	assert.Equal(t, entity.RGBA{112, 128, 144, 192}, marker.Color)

	assert.InDelta(t, 100000, fm.Destination.Radius, 1e-9)
	assert.Equal(t, entity.RGBA{255, 69, 0, 192}, fm.Destination.Color)

	assert.InDelta(t, 0.65, fm.ArcHeight, 1e-9)
	assert.InDelta(t, 10, fm.ArcTilt, 1e-9)
	assert.InDelta(t, 50, fm.View.Latitude, 1e-9)
	assert.InDelta(t, 15, fm.View.Longitude, 1e-9)
	assert.InDelta(t, 2.5, fm.View.Zoom, 1e-9)
	assert.InDelta(t, 35, fm.View.Pitch, 1e-9)
}

func TestBuildFlowMapTIVLabels(t *testing.T) {
	fm := BuildFlowMap([]entity.TradeRecord{
		{Supplier: "USA", TIVDelivered: 1234567.5},
	}, DefaultFlowOptions())

	require.Len(t, fm.Arcs, 1)
	assert.Equal(t, "1,234,567.50", fm.Arcs[0].TIVLabel)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		want        float64
	}{
		{"midpoint", 5, 0, 10, 0.5},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 1},
		{"degenerate range", 3, 3, 3, 0},
		{"infinite span", 2, math.Inf(-1), 2, 0},
		{"below min clamps", -1, 0, 10, 0},
		{"above max clamps", 11, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalize(tt.v, tt.min, tt.max), 1e-9)
		})
	}
}

func TestLerpColor(t *testing.T) {
	base := entity.RGB{65, 105, 225}
	high := entity.RGB{0, 128, 128}

	assert.Equal(t, base, lerpColor(base, high, 0))
	assert.Equal(t, high, lerpColor(base, high, 1))
	// Channels truncate toward zero, matching integer casts elsewhere.
	assert.Equal(t, entity.RGB{32, 116, 176}, lerpColor(base, high, 0.5))
}

func TestFlowOptionsFromConfig(t *testing.T) {
	defaults := DefaultFlowOptions()

	t.Run("zero config keeps defaults", func(t *testing.T) {
		opts := FlowOptionsFromConfig(types.FlowConfig{})
		assert.Equal(t, defaults, opts)
	})

	t.Run("overrides apply", func(t *testing.T) {
		opts := FlowOptionsFromConfig(types.FlowConfig{
			DestinationLat: 48.85,
			DestinationLon: 2.35,
			BaseColor:      []int{10, 20, 30},
			HighColor:      []int{200, 210, 220},
			WidthMin:       1,
			WidthMax:       20,
			Gamma:          2,
		})
		assert.InDelta(t, 48.85, opts.DestinationLat, 1e-9)
		assert.InDelta(t, 2.35, opts.DestinationLon, 1e-9)
		assert.Equal(t, entity.RGB{10, 20, 30}, opts.BaseColor)
		assert.Equal(t, entity.RGB{200, 210, 220}, opts.HighColor)
		assert.InDelta(t, 1, opts.WidthMin, 1e-9)
		assert.InDelta(t, 20, opts.WidthMax, 1e-9)
		assert.InDelta(t, 2, opts.Gamma, 1e-9)
	})

	t.Run("malformed color lengths are ignored", func(t *testing.T) {
		opts := FlowOptionsFromConfig(types.FlowConfig{BaseColor: []int{1, 2}})
		assert.Equal(t, defaults.BaseColor, opts.BaseColor)
	})
}
