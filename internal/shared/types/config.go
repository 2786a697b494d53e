package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	RegisterPath string   `json:"register_path" yaml:"register_path" toml:"register_path"`
	YearRange    string   `json:"year_range" yaml:"year_range" toml:"year_range"`
	MapStyle     string   `json:"map_style" yaml:"map_style" toml:"map_style"`
	TopN         int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	Listen       string   `json:"listen" yaml:"listen" toml:"listen"`
	SiteDir      string   `json:"site_dir" yaml:"site_dir" toml:"site_dir"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`

	Flow FlowConfig `json:"flow" yaml:"flow" toml:"flow"`
}

// FlowConfig tunes the flow-encoding transform. Zero values mean
// "use the default"; see usecase.DefaultFlowOptions.
type FlowConfig struct {
	DestinationLat float64 `json:"destination_lat" yaml:"destination_lat" toml:"destination_lat"`
	DestinationLon float64 `json:"destination_lon" yaml:"destination_lon" toml:"destination_lon"`
	BaseColor      []int   `json:"base_color" yaml:"base_color" toml:"base_color"`
	HighColor      []int   `json:"high_color" yaml:"high_color" toml:"high_color"`
	WidthMin       float64 `json:"width_min" yaml:"width_min" toml:"width_min"`
	WidthMax       float64 `json:"width_max" yaml:"width_max" toml:"width_max"`
	Gamma          float64 `json:"gamma" yaml:"gamma" toml:"gamma"`
}
