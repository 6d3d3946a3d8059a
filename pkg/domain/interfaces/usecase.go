package interfaces

import (
	"context"

	"github.com/m-mizutani/beacon/pkg/domain/model"
)

// ReleaseUseCase defines operations for looking up published releases
type ReleaseUseCase interface {
	// LatestRelease returns the head of the release directory.
	// model.ErrNoReleases is returned when the directory is empty.
	LatestRelease(ctx context.Context) (*model.ReleaseRecord, error)
}
