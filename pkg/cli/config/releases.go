package config

import (
	"net/url"
	"os"
	"time"

	"github.com/m-mizutani/beacon/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Releases holds configuration of the release directory
type Releases struct {
	File        string
	StrictOrder bool
}

// Flags returns CLI flags for release directory configuration
func (c *Releases) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "releases-file",
			Usage:       "TOML manifest of releases, newest first (built-in list if empty)",
			Destination: &c.File,
			Sources:     cli.EnvVars("BEACON_RELEASES_FILE"),
		},
		&cli.BoolFlag{
			Name:        "strict-order",
			Usage:       "Refuse to start if releases are not ordered newest first by published_at",
			Destination: &c.StrictOrder,
			Sources:     cli.EnvVars("BEACON_STRICT_ORDER"),
		},
	}
}

type releaseManifest struct {
	Releases []model.ReleaseRecord `toml:"releases"`
}

// Load builds the release directory. It is called once at startup.
func (c *Releases) Load() (*model.ReleaseDirectory, error) {
	if c.File == "" {
		return model.NewReleaseDirectory(model.DefaultReleases()...), nil
	}

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read releases file", goerr.V("path", c.File))
	}

	return ParseReleases(raw)
}

// ParseReleases decodes and validates a TOML release manifest
func ParseReleases(raw []byte) (*model.ReleaseDirectory, error) {
	var manifest releaseManifest
	if err := toml.Unmarshal(raw, &manifest); err != nil {
		return nil, goerr.Wrap(err, "failed to parse releases file")
	}

	for i, r := range manifest.Releases {
		if err := validateRelease(r); err != nil {
			return nil, goerr.Wrap(err, "invalid release", goerr.V("index", i), goerr.V("version", r.Version))
		}
	}

	return model.NewReleaseDirectory(manifest.Releases...), nil
}

func validateRelease(r model.ReleaseRecord) error {
	switch {
	case r.Version == "":
		return goerr.New("version is required")
	case r.ReleaseNotes == "":
		return goerr.New("release_notes is required")
	case r.FileName == "":
		return goerr.New("file_name is required")
	}

	u, err := url.Parse(r.DownloadURL)
	if err != nil {
		return goerr.Wrap(err, "invalid download_url", goerr.V("download_url", r.DownloadURL))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerr.New("download_url must be an absolute http(s) URL", goerr.V("download_url", r.DownloadURL))
	}

	if _, err := time.Parse(time.RFC3339, r.PublishedAt); err != nil {
		return goerr.Wrap(err, "published_at must be RFC 3339", goerr.V("published_at", r.PublishedAt))
	}

	return nil
}
