package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vidseek/vidseek/internal/videoid"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// resourceURIPrefix is the base of the resource URI synthesized for each
// record; the URI always ends in the video's 11-character identifier.
const resourceURIPrefix = "https://www.googleapis.com/youtube/v3/videos/"

// relatedFeedSize caps the number of entries in a related-videos feed.
const relatedFeedSize = 25

const defaultHTTPTimeout = 30 * time.Second

// YouTubeDataClient implements the Client interface over the YouTube Data API
type YouTubeDataClient struct {
	service     *ytapi.Service
	apiKey      string
	httpTimeout time.Duration
}

// Option configures a YouTubeDataClient
type Option func(*YouTubeDataClient)

// WithHTTPTimeout overrides the default HTTP client timeout
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *YouTubeDataClient) {
		c.httpTimeout = d
	}
}

// NewYouTubeDataClient creates a new YouTube data client
func NewYouTubeDataClient(apiKey string, opts ...Option) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	c := &YouTubeDataClient{
		apiKey:      apiKey,
		httpTimeout: defaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Connect establishes a connection to the YouTube API
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	httpClient := &http.Client{
		Timeout: c.httpTimeout,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API successfully")
	return nil
}

// Disconnect closes the connection to the YouTube API
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// VideoByID retrieves the record for a single video
func (c *YouTubeDataClient) VideoByID(ctx context.Context, id videoid.ID) (Record, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Debug().Str("video_id", string(id)).Msg("Fetching video from YouTube API")

	response, err := c.service.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("video_id", string(id)).Msg("Failed to get video from YouTube API")
		return nil, fmt.Errorf("failed to get video from YouTube API: %w", err)
	}

	if len(response.Items) == 0 {
		log.Error().Str("video_id", string(id)).Msg("Video not found on YouTube")
		return nil, fmt.Errorf("video not found on YouTube: %s", id)
	}

	return newVideoRecord(response.Items[0]), nil
}

// RelatedByID retrieves the feed of videos related to the given one.
//
// The Data API no longer offers a direct related-videos lookup, so the feed
// is assembled through a different entry point: the source video's snippet
// scopes a search by title and category, the source itself is filtered out,
// and the results are hydrated into full records in a single batched call.
func (c *YouTubeDataClient) RelatedByID(ctx context.Context, id videoid.ID) (Feed, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Debug().Str("video_id", string(id)).Msg("Fetching related videos from YouTube API")

	sourceResponse, err := c.service.Videos.
		List([]string{"snippet"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("video_id", string(id)).Msg("Failed to get source video from YouTube API")
		return nil, fmt.Errorf("failed to get video from YouTube API: %w", err)
	}
	if len(sourceResponse.Items) == 0 {
		log.Error().Str("video_id", string(id)).Msg("Video not found on YouTube")
		return nil, fmt.Errorf("video not found on YouTube: %s", id)
	}
	snippet := sourceResponse.Items[0].Snippet

	searchCall := c.service.Search.
		List([]string{"id"}).
		Type("video").
		Q(snippet.Title).
		MaxResults(relatedFeedSize + 1).
		Context(ctx)
	if snippet.CategoryId != "" {
		searchCall = searchCall.VideoCategoryId(snippet.CategoryId)
	}

	searchResponse, err := searchCall.Do()
	if err != nil {
		log.Error().Err(err).Str("video_id", string(id)).Msg("Failed to search for related videos")
		return nil, fmt.Errorf("failed to search for related videos: %w", err)
	}

	relatedIDs := make([]string, 0, len(searchResponse.Items))
	for _, item := range searchResponse.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Id.VideoId == string(id) {
			continue
		}
		relatedIDs = append(relatedIDs, item.Id.VideoId)
		if len(relatedIDs) == relatedFeedSize {
			break
		}
	}

	if len(relatedIDs) == 0 {
		return &videoFeed{}, nil
	}

	hydrateResponse, err := c.service.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(strings.Join(relatedIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Strs("video_ids", relatedIDs).Msg("Failed to hydrate related videos")
		return nil, fmt.Errorf("failed to get related videos from YouTube API: %w", err)
	}

	records := make(map[string]Record, len(hydrateResponse.Items))
	for _, item := range hydrateResponse.Items {
		records[item.Id] = newVideoRecord(item)
	}

	// Preserve the search result order.
	entries := make([]Record, 0, len(relatedIDs))
	for _, relatedID := range relatedIDs {
		if rec, ok := records[relatedID]; ok {
			entries = append(entries, rec)
		}
	}

	log.Debug().
		Str("video_id", string(id)).
		Int("related_count", len(entries)).
		Msg("Retrieved related videos from YouTube API")

	return &videoFeed{entries: entries}, nil
}
