package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dkovtun/arms-dashboard-go/internal/adapter/driven/site"
	"github.com/dkovtun/arms-dashboard-go/internal/adapter/driving/web"
	"github.com/dkovtun/arms-dashboard-go/internal/application/usecase"
	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/internal/domain/repository"
	"github.com/dkovtun/arms-dashboard-go/internal/logging"
	"github.com/dkovtun/arms-dashboard-go/internal/shared/types"
	"github.com/dkovtun/arms-dashboard-go/pkg/version"
)

// RegisterRepositoryFactory opens the dataset at a resolved path. The
// path is only known after flags and config files are parsed, so the
// composition root injects a constructor instead of a repository.
type RegisterRepositoryFactory func(ctx context.Context, path string) (repository.RegisterRepository, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	version string

	configRepo      repository.ConfigRepository
	exportRepo      repository.ExportRepository
	console         types.ConsoleInterface
	newRegisterRepo RegisterRepositoryFactory
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(
	versionStr string,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	newRegisterRepo RegisterRepositoryFactory,
) *CLIApp {
	app := &CLIApp{
		version:         versionStr,
		configRepo:      configRepo,
		exportRepo:      exportRepo,
		console:         console,
		newRegisterRepo: newRegisterRepo,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "arms-dashboard",
		Short:   "Ukraine arms transfers dashboard",
		Version: formattedVersion,
		RunE:    app.runDashboard,
	}

	rootCmd.SetVersionTemplate(`{{printf "Arms Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("register", "r", "", "Path or s3:// URL of the pre-processed dataset (SQLite)")
	rootCmd.PersistentFlags().StringP("years", "y", "All", "Delivery year range: All, 2014-2021 or 2022-2024")
	rootCmd.PersistentFlags().StringP("map-style", "m", "light", "Map style: light or dark")
	rootCmd.PersistentFlags().IntP("top", "t", usecase.DefaultTopN, "Number of countries in the by-country ranking")

	rootCmd.Flags().StringP("report-name", "n", "", "Base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "T", nil, "Report types: csv, json, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON API plus a static site",
		RunE:  app.runServe,
	}
	serveCmd.Flags().StringP("listen", "l", ":8080", "Listen address")
	serveCmd.Flags().String("site-dir", "", "Static site directory served at / (optional)")

	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Write per-selector view documents as static JSON files",
		RunE:  app.runPublish,
	}
	publishCmd.Flags().StringP("out", "o", "site/data", "Output directory for the JSON documents")

	rootCmd.AddCommand(serveCmd, publishCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs resolves command-line arguments, overlaying the config
// file (when given) under any flag the user left at its default.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, *types.Config, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	register, _ := cmd.Flags().GetString("register")
	years, _ := cmd.Flags().GetString("years")
	mapStyle, _ := cmd.Flags().GetString("map-style")
	topN, _ := cmd.Flags().GetInt("top")

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		RegisterPath: register,
		YearRange:    years,
		MapStyle:     mapStyle,
		TopN:         topN,
	}

	cfg := &types.Config{}
	if configFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded

		if args.RegisterPath == "" {
			args.RegisterPath = cfg.RegisterPath
		}
		if !cmd.Flags().Changed("years") && cfg.YearRange != "" {
			args.YearRange = cfg.YearRange
		}
		if !cmd.Flags().Changed("map-style") && cfg.MapStyle != "" {
			args.MapStyle = cfg.MapStyle
		}
		if !cmd.Flags().Changed("top") && cfg.TopN > 0 {
			args.TopN = cfg.TopN
		}
	}

	if args.RegisterPath == "" {
		return nil, nil, types.ErrRegisterPathRequired
	}

	return args, cfg, nil
}

// buildUseCase opens the dataset and wires the dashboard use case.
// The returned closer releases the dataset handle.
func (app *CLIApp) buildUseCase(ctx context.Context, args *types.CLIArgs, cfg *types.Config) (*usecase.DashboardUseCase, func(), error) {
	registerRepo, err := app.newRegisterRepo(ctx, args.RegisterPath)
	if err != nil {
		return nil, nil, err
	}

	uc := usecase.NewDashboardUseCase(
		registerRepo,
		app.exportRepo,
		app.console,
		usecase.FlowOptionsFromConfig(cfg.Flow),
	)
	closer := func() { _ = registerRepo.Close() }
	return uc, closer, nil
}

// runDashboard is the root command: the terminal dashboard.
func (app *CLIApp) runDashboard(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)
	go version.CheckLatestVersion(app.version)

	args, cfg, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		if dir, err = filepath.Abs(dir); err != nil {
			return err
		}
	}
	args.ReportName = reportName
	args.ReportType = reportType
	args.Dir = dir
	if args.ReportName == "" && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
		args.ReportType = cfg.ReportType
		args.Dir = cfg.Dir
	}

	ctx := cmd.Context()
	uc, closer, err := app.buildUseCase(ctx, args, cfg)
	if err != nil {
		return err
	}
	defer closer()

	return uc.RunDashboard(ctx, args)
}

// runServe starts the JSON API server.
func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	args, cfg, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	listen, _ := cmd.Flags().GetString("listen")
	if !cmd.Flags().Changed("listen") && cfg.Listen != "" {
		listen = cfg.Listen
	}
	siteDir, _ := cmd.Flags().GetString("site-dir")
	if siteDir == "" {
		siteDir = cfg.SiteDir
	}

	logger, err := logging.New(logging.DefaultConfig())
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc, closer, err := app.buildUseCase(ctx, args, cfg)
	if err != nil {
		return err
	}
	defer closer()

	if err := uc.LoadDataset(ctx); err != nil {
		return err
	}

	server := web.NewServer(uc, logger, siteDir, args.TopN)
	return server.Run(ctx, listen)
}

// runPublish writes one view document per selector.
func (app *CLIApp) runPublish(cmd *cobra.Command, _ []string) error {
	args, cfg, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out")

	ctx := cmd.Context()
	uc, closer, err := app.buildUseCase(ctx, args, cfg)
	if err != nil {
		return err
	}
	defer closer()

	if err := uc.LoadDataset(ctx); err != nil {
		return err
	}

	progress := app.console.ProgressWithTotal(len(entity.YearRanges))
	views := make([]entity.DashboardView, 0, len(entity.YearRanges))
	for _, selector := range entity.YearRanges {
		views = append(views, uc.BuildView(selector, args.MapStyle, args.TopN))
		progress.Increment()
	}
	progress.Stop()

	written, err := site.NewPublisher(outDir).Publish(views)
	if err != nil {
		return err
	}
	for _, path := range written {
		app.console.LogSuccess("Wrote %s", path)
	}
	app.console.LogInfo("Published %d views to %s", len(views), outDir)
	return nil
}
