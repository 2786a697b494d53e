package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	RegisterPath string
	YearRange    string
	MapStyle     string
	TopN         int
	ReportName   string
	ReportType   []string
	Dir          string
	Listen       string
	SiteDir      string
	OutDir       string
}
