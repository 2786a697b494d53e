package entity

// RGB is an opaque color triple, each channel in [0, 255].
type RGB [3]int

// RGBA is a color with an alpha channel, each component in [0, 255].
type RGBA [4]int

// Arc is one supplier-to-destination curve on the flow map. Width and
// Color encode the supplier's total delivered TIV.
type Arc struct {
	Supplier  string  `json:"supplier"`
	Capital   string  `json:"capital"`
	SourceLon float64 `json:"source_lon"`
	SourceLat float64 `json:"source_lat"`
	TargetLon float64 `json:"target_lon"`
	TargetLat float64 `json:"target_lat"`
	TotalTIV  float64 `json:"total_tiv"`
	TIVLabel  string  `json:"tiv_label"`
	Width     float64 `json:"width"`
	Color     RGB     `json:"color"`
}

// Marker is a point on the flow map, either a supplier capital or the
// destination city.
type Marker struct {
	Label   string  `json:"label"`
	Capital string  `json:"capital"`
	Lon     float64 `json:"lon"`
	Lat     float64 `json:"lat"`
	Radius  float64 `json:"radius"`
	Color   RGBA    `json:"color"`
}

// ViewState is the initial map camera.
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}

// FlowMap is the full map description handed to the rendering layer:
// one arc and one capital marker per supplier, plus the destination
// marker. Arc order carries no meaning.
type FlowMap struct {
	Style       string    `json:"style"`
	Arcs        []Arc     `json:"arcs"`
	Suppliers   []Marker  `json:"suppliers"`
	Destination Marker    `json:"destination"`
	ArcHeight   float64   `json:"arc_height"`
	ArcTilt     float64   `json:"arc_tilt"`
	View        ViewState `json:"view"`
}
