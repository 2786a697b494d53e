package usecase

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/internal/shared/types"
)

// Visual constants of the arc layer. These control curvature and the
// marker styling; they are not derived from the data.
const (
	arcHeight = 0.65
	arcTilt   = 10.0

	supplierMarkerRadius    = 50000.0
	destinationMarkerRadius = 100000.0
)

var (
	supplierMarkerColor    = entity.RGBA{112, 128, 144, 192} // slate grey, translucent
	destinationMarkerColor = entity.RGBA{255, 69, 0, 192}    // orange red, translucent

	initialView = entity.ViewState{Latitude: 50, Longitude: 15, Zoom: 2.5, Pitch: 35, Bearing: 0}
)

// FlowOptions tunes the flow-encoding transform.
type FlowOptions struct {
	DestinationName    string
	DestinationCapital string
	DestinationLat     float64
	DestinationLon     float64
	BaseColor          entity.RGB
	HighColor          entity.RGB
	WidthMin           float64
	WidthMax           float64
	Gamma              float64
	Style              string
}

// DefaultFlowOptions returns the reference encoding: arcs into Kyiv,
// royal blue to teal gradient, widths 0.5..10 with gamma 3.
func DefaultFlowOptions() FlowOptions {
	return FlowOptions{
		DestinationName:    "Ukraine",
		DestinationCapital: "Kyiv",
		DestinationLat:     50.4501,
		DestinationLon:     30.5234,
		BaseColor:          entity.RGB{65, 105, 225},
		HighColor:          entity.RGB{0, 128, 128},
		WidthMin:           0.5,
		WidthMax:           10,
		Gamma:              3,
		Style:              "light",
	}
}

// FlowOptionsFromConfig merges the non-zero fields of a loaded flow
// configuration over the defaults.
func FlowOptionsFromConfig(cfg types.FlowConfig) FlowOptions {
	opts := DefaultFlowOptions()
	if cfg.DestinationLat != 0 {
		opts.DestinationLat = cfg.DestinationLat
	}
	if cfg.DestinationLon != 0 {
		opts.DestinationLon = cfg.DestinationLon
	}
	if len(cfg.BaseColor) == 3 {
		opts.BaseColor = entity.RGB{cfg.BaseColor[0], cfg.BaseColor[1], cfg.BaseColor[2]}
	}
	if len(cfg.HighColor) == 3 {
		opts.HighColor = entity.RGB{cfg.HighColor[0], cfg.HighColor[1], cfg.HighColor[2]}
	}
	if cfg.WidthMin != 0 {
		opts.WidthMin = cfg.WidthMin
	}
	if cfg.WidthMax != 0 {
		opts.WidthMax = cfg.WidthMax
	}
	if cfg.Gamma != 0 {
		opts.Gamma = cfg.Gamma
	}
	return opts
}

// supplierTotal is the per-supplier aggregate the arcs are built from.
// Capital and coordinates carry the first observed value per supplier;
// the dataset is assumed to keep them constant within a supplier.
type supplierTotal struct {
	supplier string
	capital  string
	lat      float64
	lon      float64
	totalTIV float64
}

// BuildFlowMap converts a filtered record set into the map description:
// one width- and color-scaled arc per supplier into the destination,
// one capital marker per supplier and the destination marker.
//
// Widths follow gamma-corrected min-max normalization of log10(total
// TIV); colors follow the same normalization without gamma. Non-finite
// intermediates (zero totals, a single supplier, all totals tied)
// collapse to the minimum encoding rather than propagating NaN or Inf.
func BuildFlowMap(records []entity.TradeRecord, opts FlowOptions) entity.FlowMap {
	totals := aggregateSuppliers(records)

	logTIV := make([]float64, len(totals))
	minLog, maxLog := math.Inf(1), math.Inf(-1)
	for i, total := range totals {
		logTIV[i] = math.Log10(total.totalTIV)
		if logTIV[i] < minLog {
			minLog = logTIV[i]
		}
		if logTIV[i] > maxLog {
			maxLog = logTIV[i]
		}
	}

	arcs := make([]entity.Arc, 0, len(totals))
	markers := make([]entity.Marker, 0, len(totals))
	for i, total := range totals {
		t := normalize(logTIV[i], minLog, maxLog)
		width := opts.WidthMin + (opts.WidthMax-opts.WidthMin)*math.Pow(t, opts.Gamma)

		arcs = append(arcs, entity.Arc{
			Supplier:  total.supplier,
			Capital:   total.capital,
			SourceLon: total.lon,
			SourceLat: total.lat,
			TargetLon: opts.DestinationLon,
			TargetLat: opts.DestinationLat,
			TotalTIV:  total.totalTIV,
			TIVLabel:  humanize.FormatFloat("#,###.##", total.totalTIV),
			Width:     width,
			Color:     lerpColor(opts.BaseColor, opts.HighColor, t),
		})
		markers = append(markers, entity.Marker{
			Label:   total.supplier,
			Capital: total.capital,
			Lon:     total.lon,
			Lat:     total.lat,
			Radius:  supplierMarkerRadius,
			Color:   supplierMarkerColor,
		})
	}

	return entity.FlowMap{
		Style:     opts.Style,
		Arcs:      arcs,
		Suppliers: markers,
		Destination: entity.Marker{
			Label:   opts.DestinationName,
			Capital: opts.DestinationCapital,
			Lon:     opts.DestinationLon,
			Lat:     opts.DestinationLat,
			Radius:  destinationMarkerRadius,
			Color:   destinationMarkerColor,
		},
		ArcHeight: arcHeight,
		ArcTilt:   arcTilt,
		View:      initialView,
	}
}

// aggregateSuppliers groups records by supplier and sums the delivered
// TIV, keeping first-observed capital coordinates. Output order follows
// first appearance in the input, which the loader keeps sorted by
// supplier.
func aggregateSuppliers(records []entity.TradeRecord) []supplierTotal {
	index := make(map[string]int, len(records))
	totals := make([]supplierTotal, 0, len(records))

	for _, record := range records {
		i, seen := index[record.Supplier]
		if !seen {
			index[record.Supplier] = len(totals)
			totals = append(totals, supplierTotal{
				supplier: record.Supplier,
				capital:  record.SupplierCapital,
				lat:      record.CapitalLat,
				lon:      record.CapitalLon,
			})
			i = len(totals) - 1
		}
		totals[i].totalTIV += record.TIVDelivered
	}
	return totals
}

// normalize maps v into [0, 1] relative to [min, max]. Degenerate
// ranges and non-finite logarithms produce NaN or Inf here; both are
// collapsed to 0 so the minimum encoding wins.
func normalize(v, min, max float64) float64 {
	t := (v - min) / (max - min)
	if math.IsNaN(t) {
		return 0
	}
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// lerpColor interpolates each channel independently and floors to an
// integer. With both endpoints in [0, 255] and t in [0, 1] the result
// stays in range.
func lerpColor(base, high entity.RGB, t float64) entity.RGB {
	var out entity.RGB
	for ch := 0; ch < 3; ch++ {
		out[ch] = int(float64(base[ch]) + float64(high[ch]-base[ch])*t)
	}
	return out
}
