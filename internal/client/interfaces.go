// Package client defines the boundary to the video metadata service and
// provides the YouTube Data API implementation of it.
package client

import (
	"context"

	"github.com/vidseek/vidseek/internal/videoid"
)

// Record is one video entry as returned by the metadata service.
type Record interface {
	// Title returns the video title
	Title() string

	// Description returns the video description
	Description() string

	// Duration returns the video duration in seconds
	Duration() int64

	// ResourceID returns the API resource URI identifying the video;
	// its last 11 characters are the canonical video identifier
	ResourceID() string
}

// Feed is an ordered collection of records returned for a query such as
// "related videos".
type Feed interface {
	// Entries returns the feed's records in their given order
	Entries() []Record
}

// Client represents the video metadata service collaborator.
type Client interface {
	// VideoByID fetches the record for a single video
	VideoByID(ctx context.Context, id videoid.ID) (Record, error)

	// RelatedByID fetches the feed of videos related to the given one
	RelatedByID(ctx context.Context, id videoid.ID) (Feed, error)
}
