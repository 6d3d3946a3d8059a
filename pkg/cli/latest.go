package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/beacon/pkg/cli/config"
	"github.com/m-mizutani/beacon/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdLatest() *cli.Command {
	var releasesCfg config.Releases

	return &cli.Command{
		Name:  "latest",
		Usage: "Show the release the server would report as latest",
		Flags: releasesCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			directory, err := loadDirectory(ctx, &releasesCfg)
			if err != nil {
				return err
			}

			record, ok := directory.Latest()
			if !ok {
				return goerr.Wrap(model.ErrNoReleases, "latest release is not available")
			}

			w := c.Root().Writer
			label := color.New(color.FgCyan, color.Bold)
			version := color.New(color.FgGreen, color.Bold)

			label.Fprint(w, "Version:      ")
			version.Fprintln(w, record.Version)
			label.Fprint(w, "Published at: ")
			fmt.Fprintln(w, record.PublishedAt)
			label.Fprint(w, "File name:    ")
			fmt.Fprintln(w, record.FileName)
			label.Fprint(w, "Download URL: ")
			fmt.Fprintln(w, record.DownloadURL)
			label.Fprintln(w, "Release notes:")
			fmt.Fprintln(w, record.ReleaseNotes)

			return nil
		},
	}
}
