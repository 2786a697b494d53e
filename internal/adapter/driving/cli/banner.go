package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dkovtun/arms-dashboard-go/pkg/version"
)

// displayWelcomeBanner shows the welcome banner with version info.
func displayWelcomeBanner(versionStr string) {
	banner := `
     /$$$$$$                                          /$$$$$$$                      /$$
    /$$__  $$                                        | $$__  $$                    | $$
   | $$  \ $$  /$$$$$$  /$$$$$$/$$$$   /$$$$$$$      | $$  \ $$  /$$$$$$   /$$$$$$$| $$$$$$$
   | $$$$$$$$ /$$__  $$| $$_  $$_  $$ /$$_____/      | $$  | $$ |____  $$ /$$_____/| $$__  $$
   | $$__  $$| $$  \__/| $$ \ $$ \ $$|  $$$$$$       | $$  | $$  /$$$$$$$|  $$$$$$ | $$  \ $$
   | $$  | $$| $$      | $$ | $$ | $$ \____  $$      | $$  | $$ /$$__  $$ \____  $$| $$  | $$
   | $$  | $$| $$      | $$ | $$ | $$ /$$$$$$$/      | $$$$$$$/|  $$$$$$$ /$$$$$$$/| $$  | $$
   |__/  |__/|__/      |__/ |__/ |__/|_______/       |_______/  \_______/|_______/ |__/  |__/
   `
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(yellow(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Ukraine Arms Transfers Dashboard (v%s)", formattedVersion)))
}
