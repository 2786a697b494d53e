package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dkovtun/arms-dashboard-go/internal/adapter/driven/config"
	"github.com/dkovtun/arms-dashboard-go/internal/adapter/driven/export"
	"github.com/dkovtun/arms-dashboard-go/internal/adapter/driven/store"
	"github.com/dkovtun/arms-dashboard-go/internal/adapter/driving/cli"
	"github.com/dkovtun/arms-dashboard-go/internal/domain/repository"
	"github.com/dkovtun/arms-dashboard-go/pkg/console"
	"github.com/dkovtun/arms-dashboard-go/pkg/version"
)

func main() {
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	newRegisterRepo := func(ctx context.Context, path string) (repository.RegisterRepository, error) {
		return store.NewSQLiteRepository(ctx, path)
	}

	app := cli.NewCLIApp(
		version.Version,
		configRepo,
		exportRepo,
		consoleImpl,
		newRegisterRepo,
	)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
