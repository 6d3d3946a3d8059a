package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// ErrNoReleases is returned when the release directory holds no records
var ErrNoReleases = goerr.New("no releases found")

// ReleaseRecord represents metadata of a single published release
type ReleaseRecord struct {
	Version      string `json:"version" toml:"version"`
	ReleaseNotes string `json:"releaseNotes" toml:"release_notes"`
	DownloadURL  string `json:"downloadUrl" toml:"download_url"`
	FileName     string `json:"fileName" toml:"file_name"`
	PublishedAt  string `json:"publishedAt" toml:"published_at"`
}

// ReleaseDirectory is an ordered, read-only list of releases, newest first.
// The order is the one given at construction and is never re-sorted.
type ReleaseDirectory struct {
	records []ReleaseRecord
}

// NewReleaseDirectory creates a directory holding a copy of records
func NewReleaseDirectory(records ...ReleaseRecord) *ReleaseDirectory {
	copied := make([]ReleaseRecord, len(records))
	copy(copied, records)
	return &ReleaseDirectory{records: copied}
}

// Latest returns the head of the directory
func (d *ReleaseDirectory) Latest() (ReleaseRecord, bool) {
	if d == nil || len(d.records) == 0 {
		return ReleaseRecord{}, false
	}
	return d.records[0], true
}

// Len returns the number of records
func (d *ReleaseDirectory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns a copy of all records in directory order
func (d *ReleaseDirectory) Records() []ReleaseRecord {
	if d == nil {
		return nil
	}
	copied := make([]ReleaseRecord, len(d.records))
	copy(copied, d.records)
	return copied
}

// CheckOrder reports the first pair of adjacent records whose publishedAt goes
// forward in time. Records with unparsable timestamps are skipped.
func (d *ReleaseDirectory) CheckOrder() error {
	if d == nil {
		return nil
	}

	for i := 1; i < len(d.records); i++ {
		prev, err := time.Parse(time.RFC3339, d.records[i-1].PublishedAt)
		if err != nil {
			continue
		}
		cur, err := time.Parse(time.RFC3339, d.records[i].PublishedAt)
		if err != nil {
			continue
		}

		if cur.After(prev) {
			return goerr.New("release directory is not ordered newest first",
				goerr.V("index", i),
				goerr.V("head_version", d.records[i-1].Version),
				goerr.V("newer_version", d.records[i].Version),
			)
		}
	}

	return nil
}

// DefaultReleases is the built-in curated release list, newest first
func DefaultReleases() []ReleaseRecord {
	return []ReleaseRecord{
		{
			Version:      "3.2.5",
			ReleaseNotes: "Exciting new features!\n- Added dark mode support\n- Improved performance for large lists",
			DownloadURL:  "https://your-vercel-app-domain.vercel.app/downloads/your-app-v1.0.2.apk",
			FileName:     "your-app-v1.0.2.apk",
			PublishedAt:  "2025-08-06T12:00:00Z",
		},
		{
			Version:      "1.0.1",
			ReleaseNotes: "Bug fixes and performance improvements.\n- Fixed login issue\n- Improved UI responsiveness",
			DownloadURL:  "https://your-vercel-app-domain.vercel.app/downloads/your-app-v1.0.1.apk",
			FileName:     "your-app-v1.0.1.apk",
			PublishedAt:  "2025-08-01T10:00:00Z",
		},
	}
}
