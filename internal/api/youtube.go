package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yelnady/personal-portfolio/internal/metrics"
	"github.com/yelnady/personal-portfolio/internal/models"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"
)

const (
	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

	// Upper bound on bytes read from a single upstream response.
	maxResponseBytes = 2 << 20
)

// YouTubeClient handles direct HTTP requests to YouTube API
type YouTubeClient struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewYouTubeClient creates a new YouTube client. Every request is bounded by timeout.
func NewYouTubeClient(apiKey, baseURL string, timeout time.Duration) *YouTubeClient {
	if baseURL == "" {
		baseURL = youtubeAPIBaseURL
	}
	return &YouTubeClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		timeout: timeout,
		client:  &http.Client{},
	}
}

// GetUploadsPlaylistID resolves a channel to the playlist holding all of its uploads
func (c *YouTubeClient) GetUploadsPlaylistID(ctx context.Context, channelID string) (models.ChannelLookupResult, error) {
	const op = "channels"

	q := url.Values{}
	q.Set("part", "contentDetails")
	q.Set("id", channelID)

	var response struct {
		Items []*youtube.Channel `json:"items"`
	}
	if err := c.getJSON(ctx, op, "Failed to fetch channel data", q, &response); err != nil {
		return models.ChannelLookupResult{}, err
	}

	if len(response.Items) == 0 || response.Items[0] == nil {
		return models.ChannelLookupResult{}, &GatewayError{
			Kind:   KindChannelNotFound,
			Op:     op,
			Detail: "Channel not found. Please verify the channel ID.",
		}
	}

	result := models.ChannelLookupResult{ChannelID: channelID}
	if cd := response.Items[0].ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		result.UploadsPlaylistID = cd.RelatedPlaylists.Uploads
	}
	if !result.Found() {
		return result, &GatewayError{
			Kind:   KindUploadsUnresolvable,
			Op:     op,
			Detail: "Could not determine the uploads playlist ID.",
		}
	}
	return result, nil
}

// ListPlaylistItems fetches up to maxResults items of a playlist, newest first
func (c *YouTubeClient) ListPlaylistItems(ctx context.Context, playlistID string, maxResults int) ([]*youtube.PlaylistItem, error) {
	const op = "playlistItems"

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("playlistId", playlistID)
	q.Set("order", "date")

	var response struct {
		Items []*youtube.PlaylistItem `json:"items"`
	}
	if err := c.getJSON(ctx, op, "Failed to fetch videos", q, &response); err != nil {
		return nil, err
	}
	return response.Items, nil
}

// getJSON performs one GET against the API and decodes the body into out.
// Failures come back as *GatewayError classified by where they happened.
func (c *YouTubeClient) getJSON(ctx context.Context, op, failureDetail string, query url.Values, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequestsTotal.WithLabelValues(op, outcome(err)).Inc()
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	query.Set("key", c.apiKey)
	endpoint := c.baseURL + "/" + op + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &GatewayError{Kind: KindUnknown, Op: op, Detail: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		detail := failureDetail
		if errors.Is(err, context.DeadlineExceeded) {
			detail = fmt.Sprintf("%s: timed out after %s", failureDetail, c.timeout)
		}
		return &GatewayError{Kind: KindUpstreamRequest, Op: op, Detail: detail, Err: redactKey(err)}
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		gerr := &GatewayError{
			Kind:   KindUpstreamRequest,
			Op:     op,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("%s: %d", failureDetail, resp.StatusCode),
		}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			gerr.Diagnostic = apiErr.Body
		}
		return gerr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &GatewayError{Kind: KindUpstreamRequest, Op: op, Status: resp.StatusCode, Detail: failureDetail, Err: redactKey(err)}
	}

	// The API may report an application error inside a successful response.
	var envelope struct {
		Error *googleapi.Error `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &GatewayError{
			Kind:       KindUnknown,
			Op:         op,
			Status:     resp.StatusCode,
			Detail:     "failed to decode response",
			Diagnostic: string(body),
			Err:        err,
		}
	}
	if envelope.Error != nil {
		return &GatewayError{
			Kind:       KindUpstreamAPI,
			Op:         op,
			Status:     resp.StatusCode,
			Detail:     fmt.Sprintf("YouTube API Error: %s", envelope.Error.Message),
			Diagnostic: string(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &GatewayError{
			Kind:       KindUnknown,
			Op:         op,
			Status:     resp.StatusCode,
			Detail:     "failed to decode response",
			Diagnostic: string(body),
			Err:        err,
		}
	}
	return nil
}

// redactKey strips the request URL, which carries the API key, from transport errors
func redactKey(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s request: %w", uerr.Op, uerr.Err)
	}
	return err
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return string(KindOf(err))
}
