package client

import (
	ytapi "google.golang.org/api/youtube/v3"
)

// videoRecord adapts one YouTube API video item to the Record interface.
type videoRecord struct {
	title       string
	description string
	duration    int64
	resourceURI string
}

func newVideoRecord(item *ytapi.Video) *videoRecord {
	rec := &videoRecord{
		resourceURI: resourceURIPrefix + item.Id,
	}
	if item.Snippet != nil {
		rec.title = item.Snippet.Title
		rec.description = item.Snippet.Description
	}
	if item.ContentDetails != nil {
		rec.duration = parseISODuration(item.ContentDetails.Duration)
	}
	return rec
}

// Title implements Record
func (r *videoRecord) Title() string {
	return r.title
}

// Description implements Record
func (r *videoRecord) Description() string {
	return r.description
}

// Duration implements Record
func (r *videoRecord) Duration() int64 {
	return r.duration
}

// ResourceID implements Record
func (r *videoRecord) ResourceID() string {
	return r.resourceURI
}

// videoFeed implements Feed over an ordered slice of records.
type videoFeed struct {
	entries []Record
}

// Entries implements Feed
func (f *videoFeed) Entries() []Record {
	return f.entries
}
