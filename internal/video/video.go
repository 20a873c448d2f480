// Package video wraps metadata service records in value objects: a single
// Video and an ordered, read-only Collection of them.
package video

import (
	"context"
	"fmt"

	"github.com/vidseek/vidseek/internal/client"
	"github.com/vidseek/vidseek/internal/videoid"
)

// Video represents a particular video. It wraps exactly one service record
// together with the service collaborator used to traverse relationships, and
// is immutable after construction.
type Video struct {
	svc client.Client
	rec client.Record
}

// New wraps an already-obtained record.
func New(svc client.Client, rec client.Record) Video {
	return Video{svc: svc, rec: rec}
}

// FromWebURL constructs a Video from a web URL: the identifier is extracted
// from the URL, then looked up against the service. Extraction and service
// errors propagate unchanged.
func FromWebURL(ctx context.Context, svc client.Client, url string) (Video, error) {
	id, err := videoid.FromWebURL(url)
	if err != nil {
		return Video{}, err
	}
	rec, err := svc.VideoByID(ctx, id)
	if err != nil {
		return Video{}, err
	}
	return New(svc, rec), nil
}

// Title returns the video title.
func (v Video) Title() string {
	return v.rec.Title()
}

// Description returns the video description.
func (v Video) Description() string {
	return v.rec.Description()
}

// Duration returns the video duration in seconds.
func (v Video) Duration() int64 {
	return v.rec.Duration()
}

// ID returns the canonical video identifier, derived on demand from the
// record's resource URI.
func (v Video) ID() videoid.ID {
	return videoid.FromAPIURI(v.rec.ResourceID())
}

// Related fetches the feed of videos related to this one. The service's
// related lookup takes a plain identifier rather than the resource URI the
// record carries, so the identifier is re-derived first.
func (v Video) Related(ctx context.Context) (Collection, error) {
	feed, err := v.svc.RelatedByID(ctx, v.ID())
	if err != nil {
		return Collection{}, err
	}
	return FromFeed(v.svc, feed), nil
}

func (v Video) String() string {
	return fmt.Sprintf("Video(title=%s,duration=%d)", v.Title(), v.Duration())
}
