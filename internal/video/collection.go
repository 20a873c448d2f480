package video

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/vidseek/vidseek/internal/client"
)

// ErrEmptyCollection is returned by Random on a collection with no videos.
var ErrEmptyCollection = errors.New("collection is empty")

// IndexError reports an out-of-range access on a Collection.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range in collection of length %d", e.Index, e.Len)
}

// Collection is an ordered, read-only collection of videos. Insertion order
// is preserved and duplicates are permitted.
type Collection struct {
	videos []Video
}

// NewCollection copies the given videos into a new collection.
func NewCollection(videos ...Video) Collection {
	vs := make([]Video, len(videos))
	copy(vs, videos)
	return Collection{videos: vs}
}

// FromFeed wraps each entry of an already-fetched feed, preserving feed
// order. No network calls are made; entries carry full records.
func FromFeed(svc client.Client, feed client.Feed) Collection {
	entries := feed.Entries()
	videos := make([]Video, 0, len(entries))
	for _, rec := range entries {
		videos = append(videos, New(svc, rec))
	}
	return Collection{videos: videos}
}

// FromWebURLs constructs one Video per URL, eagerly and in input order. The
// first extraction or lookup failure aborts the whole construction; no
// partial collection is returned.
func FromWebURLs(ctx context.Context, svc client.Client, urls []string) (Collection, error) {
	videos := make([]Video, 0, len(urls))
	for _, url := range urls {
		v, err := FromWebURL(ctx, svc, url)
		if err != nil {
			return Collection{}, err
		}
		videos = append(videos, v)
	}
	return Collection{videos: videos}, nil
}

// Len returns the number of videos in the collection.
func (c Collection) Len() int {
	return len(c.videos)
}

// At returns the video at the given offset, or an *IndexError when the
// offset is out of range.
func (c Collection) At(i int) (Video, error) {
	if i < 0 || i >= len(c.videos) {
		return Video{}, &IndexError{Index: i, Len: len(c.videos)}
	}
	return c.videos[i], nil
}

// Random returns a uniformly chosen video from the collection, or
// ErrEmptyCollection when there is none to choose.
func (c Collection) Random() (Video, error) {
	if len(c.videos) == 0 {
		return Video{}, ErrEmptyCollection
	}
	return c.videos[rand.Intn(len(c.videos))], nil
}

// Videos returns a copy of the collection's videos in order.
func (c Collection) Videos() []Video {
	vs := make([]Video, len(c.videos))
	copy(vs, c.videos)
	return vs
}
