package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovtun/arms-dashboard-go/internal/adapter/driven/config"
	"github.com/dkovtun/arms-dashboard-go/internal/shared/types"
)

func newTestApp(t *testing.T) *CLIApp {
	t.Helper()
	return NewCLIApp("test", config.NewConfigRepository(), nil, nil, nil)
}

func parseTestArgs(t *testing.T, app *CLIApp, argv ...string) (*types.CLIArgs, *types.Config, error) {
	t.Helper()
	require.NoError(t, app.rootCmd.ParseFlags(argv))
	return app.parseArgs(app.rootCmd)
}

func TestParseArgsFlagsOnly(t *testing.T) {
	app := newTestApp(t)

	args, _, err := parseTestArgs(t, app,
		"--register", "data/register.db",
		"--years", "2022-2024",
		"--map-style", "dark",
		"--top", "5",
	)
	require.NoError(t, err)
	assert.Equal(t, "data/register.db", args.RegisterPath)
	assert.Equal(t, "2022-2024", args.YearRange)
	assert.Equal(t, "dark", args.MapStyle)
	assert.Equal(t, 5, args.TopN)
}

func TestParseArgsRequiresRegisterPath(t *testing.T) {
	app := newTestApp(t)

	_, _, err := parseTestArgs(t, app)
	assert.ErrorIs(t, err, types.ErrRegisterPathRequired)
}

func TestParseArgsConfigFileFillsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
register_path = "data/register.db"
year_range = "2014-2021"
map_style = "dark"
top_n = 7
`), 0o644))

	app := newTestApp(t)
	args, cfg, err := parseTestArgs(t, app, "--config-file", configPath)
	require.NoError(t, err)

	assert.Equal(t, "data/register.db", args.RegisterPath)
	assert.Equal(t, "2014-2021", args.YearRange)
	assert.Equal(t, "dark", args.MapStyle)
	assert.Equal(t, 7, args.TopN)
	assert.Equal(t, "data/register.db", cfg.RegisterPath)
}

func TestParseArgsExplicitFlagsWinOverConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
register_path = "config/register.db"
year_range = "2014-2021"
map_style = "dark"
`), 0o644))

	app := newTestApp(t)
	args, _, err := parseTestArgs(t, app,
		"--config-file", configPath,
		"--register", "flag/register.db",
		"--years", "2022-2024",
	)
	require.NoError(t, err)

	assert.Equal(t, "flag/register.db", args.RegisterPath)
	assert.Equal(t, "2022-2024", args.YearRange)
	// map-style was not set on the command line, so the config wins.
	assert.Equal(t, "dark", args.MapStyle)
}

func TestParseArgsBadConfigFile(t *testing.T) {
	app := newTestApp(t)
	_, _, err := parseTestArgs(t, app, "--config-file", filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
