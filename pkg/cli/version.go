package cli

import (
	"context"
	"fmt"

	goversion "github.com/caarlos0/go-version"
	"github.com/urfave/cli/v3"
)

// Set by -ldflags at release time
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

const (
	appName        = "overseerr-bulk"
	appDescription = "Bulk email notification settings for Overseerr"
	appWebsite     = "https://github.com/jimmyre420/overseerr-bulk-user-modify"
)

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(appName, appDescription, appWebsite),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}

func cmdVersion() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := fmt.Fprintln(c.Root().Writer, buildVersion().String())
			return err
		},
	}
}
