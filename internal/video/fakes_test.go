package video

import (
	"context"
	"fmt"

	"github.com/vidseek/vidseek/internal/client"
	"github.com/vidseek/vidseek/internal/videoid"
)

// fakeRecord is an in-memory Record implementation for tests.
type fakeRecord struct {
	title       string
	description string
	duration    int64
	resourceID  string
}

func (r fakeRecord) Title() string       { return r.title }
func (r fakeRecord) Description() string { return r.description }
func (r fakeRecord) Duration() int64     { return r.duration }
func (r fakeRecord) ResourceID() string  { return r.resourceID }

// newFakeRecord builds a record whose resource URI ends in the given id.
func newFakeRecord(id, title string, duration int64) fakeRecord {
	return fakeRecord{
		title:       title,
		description: "description of " + title,
		duration:    duration,
		resourceID:  "https://www.googleapis.com/youtube/v3/videos/" + id,
	}
}

type fakeFeed struct {
	records []client.Record
}

func (f fakeFeed) Entries() []client.Record { return f.records }

// fakeClient is an in-memory Client implementation for tests.
type fakeClient struct {
	videos  map[videoid.ID]client.Record
	related map[videoid.ID][]client.Record
	err     error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		videos:  make(map[videoid.ID]client.Record),
		related: make(map[videoid.ID][]client.Record),
	}
}

func (c *fakeClient) add(id string, rec client.Record) {
	c.videos[videoid.ID(id)] = rec
}

func (c *fakeClient) VideoByID(ctx context.Context, id videoid.ID) (client.Record, error) {
	if c.err != nil {
		return nil, c.err
	}
	rec, ok := c.videos[id]
	if !ok {
		return nil, fmt.Errorf("video not found: %s", id)
	}
	return rec, nil
}

func (c *fakeClient) RelatedByID(ctx context.Context, id videoid.ID) (client.Feed, error) {
	if c.err != nil {
		return nil, c.err
	}
	records, ok := c.related[id]
	if !ok {
		return nil, fmt.Errorf("video not found: %s", id)
	}
	return fakeFeed{records: records}, nil
}
