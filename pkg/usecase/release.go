package usecase

import (
	"context"

	"github.com/m-mizutani/beacon/pkg/domain/interfaces"
	"github.com/m-mizutani/beacon/pkg/domain/model"
	"github.com/m-mizutani/beacon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type releaseUseCase struct {
	directory *model.ReleaseDirectory
}

// NewRelease creates a new instance of ReleaseUseCase serving the given directory
func NewRelease(directory *model.ReleaseDirectory) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		directory: directory,
	}
}

// LatestRelease returns the first record of the release directory
func (uc *releaseUseCase) LatestRelease(ctx context.Context) (*model.ReleaseRecord, error) {
	logger := logging.From(ctx)
	logger.Info("Request received for latest release")

	record, ok := uc.directory.Latest()
	if !ok {
		logger.Warn("Release directory is empty")
		return nil, goerr.Wrap(model.ErrNoReleases, "latest release is not available")
	}

	logger.Debug("Found latest release",
		"version", record.Version,
		"published_at", record.PublishedAt,
	)

	return &record, nil
}
