package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/beacon/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	var logger *slog.Logger
	app := newCommand(&logger, io.Discard)
	app.Writer = &buf

	err := app.Run(context.Background(), append([]string{"beacon", "--log-level", "error"}, args...))
	return buf.String(), err
}

func TestLatestCommand(t *testing.T) {
	t.Run("built-in releases", func(t *testing.T) {
		out, err := runCommand(t, "latest")
		gt.NoError(t, err)
		gt.True(t, strings.Contains(out, "3.2.5"))
		gt.True(t, strings.Contains(out, "your-app-v1.0.2.apk"))
		gt.False(t, strings.Contains(out, "1.0.1\n"))
	})

	t.Run("empty manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "releases.toml")
		gt.NoError(t, os.WriteFile(path, []byte(""), 0600))

		_, err := runCommand(t, "latest", "--releases-file", path)
		gt.True(t, errors.Is(err, model.ErrNoReleases))
	})

	t.Run("strict order rejects unordered manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "releases.toml")
		manifest := `
[[releases]]
version = "1.0.0"
release_notes = "first"
download_url = "https://example.com/app-1.0.0.apk"
file_name = "app-1.0.0.apk"
published_at = "2024-01-01T00:00:00Z"

[[releases]]
version = "2.0.0"
release_notes = "second"
download_url = "https://example.com/app-2.0.0.apk"
file_name = "app-2.0.0.apk"
published_at = "2025-01-01T00:00:00Z"
`
		gt.NoError(t, os.WriteFile(path, []byte(manifest), 0600))

		out, err := runCommand(t, "latest", "--releases-file", path)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(out, "1.0.0"))

		_, err = runCommand(t, "latest", "--releases-file", path, "--strict-order")
		gt.Error(t, err)
	})
}

func TestLatestCommand_NoRequestLog(t *testing.T) {
	var out, logs bytes.Buffer
	var logger *slog.Logger
	app := newCommand(&logger, &logs)
	app.Writer = &out

	err := app.Run(context.Background(), []string{"beacon", "--log-level", "debug", "--log-json", "latest"})
	gt.NoError(t, err)
	gt.True(t, strings.Contains(out.String(), "3.2.5"))
	gt.True(t, strings.Contains(logs.String(), "Release directory loaded"))
	gt.False(t, strings.Contains(logs.String(), "Request received for latest release"))
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := Run(context.Background(), []string{"beacon", "--log-level", "verbose", "latest"})
	gt.Error(t, err)
}
