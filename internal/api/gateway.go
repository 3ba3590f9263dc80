package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yelnady/personal-portfolio/internal/config"
	"github.com/yelnady/personal-portfolio/internal/metrics"
	"github.com/yelnady/personal-portfolio/internal/middleware"
	"github.com/yelnady/personal-portfolio/internal/models"
)

const defaultWatchURLTemplate = "https://www.youtube.com/watch?v=%s"

// GatewayConfig fixes which channel is listed and how
type GatewayConfig struct {
	APIKey           string
	ChannelID        string
	MaxResults       int
	BaseURL          string
	RequestTimeout   time.Duration
	WatchURLTemplate string
}

// DefaultGatewayConfig returns the configuration used when nothing is overridden
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		ChannelID:        config.DefaultChannelID,
		MaxResults:       config.DefaultMaxResults,
		BaseURL:          config.DefaultBaseURL,
		RequestTimeout:   config.DefaultRequestTimeout,
		WatchURLTemplate: defaultWatchURLTemplate,
	}
}

// GatewayConfigFrom builds the gateway configuration from application config
func GatewayConfigFrom(cfg *config.Config) GatewayConfig {
	gc := DefaultGatewayConfig()
	gc.APIKey = cfg.YouTubeAPIKey
	if cfg.ChannelID != "" {
		gc.ChannelID = cfg.ChannelID
	}
	if cfg.MaxResults > 0 {
		gc.MaxResults = cfg.MaxResults
	}
	if cfg.YouTubeBaseURL != "" {
		gc.BaseURL = cfg.YouTubeBaseURL
	}
	if cfg.RequestTimeout > 0 {
		gc.RequestTimeout = cfg.RequestTimeout
	}
	return gc
}

// FailureRecorder persists failure diagnostics
type FailureRecorder interface {
	RecordFailure(ctx context.Context, rec models.FailureRecord) error
}

// VideoGateway lists the most recent uploads of one configured channel
type VideoGateway struct {
	cfg      GatewayConfig
	client   *YouTubeClient
	logger   *slog.Logger
	recorder FailureRecorder
}

// NewVideoGateway creates a gateway. recorder may be nil.
func NewVideoGateway(cfg GatewayConfig, logger *slog.Logger, recorder FailureRecorder) *VideoGateway {
	if cfg.WatchURLTemplate == "" {
		cfg.WatchURLTemplate = defaultWatchURLTemplate
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = config.DefaultMaxResults
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VideoGateway{
		cfg:      cfg,
		client:   NewYouTubeClient(cfg.APIKey, cfg.BaseURL, cfg.RequestTimeout),
		logger:   logger,
		recorder: recorder,
	}
}

// ListRecentVideos resolves the channel's uploads playlist and returns its newest
// items. Every failure is logged and returned as a *GatewayError.
func (g *VideoGateway) ListRecentVideos(ctx context.Context) ([]models.VideoSummary, error) {
	videos, err := g.listRecentVideos(ctx)
	if err != nil {
		g.reportFailure(ctx, err)
		return nil, err
	}
	metrics.VideosReturned.Observe(float64(len(videos)))
	return videos, nil
}

func (g *VideoGateway) listRecentVideos(ctx context.Context) ([]models.VideoSummary, error) {
	if g.cfg.APIKey == "" {
		return nil, &GatewayError{
			Kind:   KindConfiguration,
			Op:     "config",
			Detail: MissingAPIKeyErrorMessage,
			Err:    config.ErrMissingAPIKey,
		}
	}

	channel, err := g.client.GetUploadsPlaylistID(ctx, g.cfg.ChannelID)
	if err != nil {
		return nil, err
	}

	items, err := g.client.ListPlaylistItems(ctx, channel.UploadsPlaylistID, g.cfg.MaxResults)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		g.logger.InfoContext(ctx, "no videos found in the uploads playlist",
			"channel_id", g.cfg.ChannelID,
			"playlist_id", channel.UploadsPlaylistID,
		)
		return []models.VideoSummary{}, nil
	}

	videos := toVideoSummaries(dropUnidentified(items), g.cfg.WatchURLTemplate)
	if len(videos) > g.cfg.MaxResults {
		videos = videos[:g.cfg.MaxResults]
	}
	return videos, nil
}

func (g *VideoGateway) reportFailure(ctx context.Context, err error) {
	var gerr *GatewayError
	if !errors.As(err, &gerr) {
		gerr = &GatewayError{Kind: KindUnknown, Op: "unknown", Err: err}
	}
	requestID := middleware.RequestIDFrom(ctx)

	metrics.GatewayFailuresTotal.WithLabelValues(string(gerr.Kind)).Inc()

	attrs := []any{
		"kind", string(gerr.Kind),
		"op", gerr.Op,
		"status", gerr.Status,
		"error", gerr.Error(),
		"channel_id", g.cfg.ChannelID,
		"request_id", requestID,
	}
	if gerr.Diagnostic != "" {
		attrs = append(attrs, "upstream_body", gerr.Diagnostic)
	}
	g.logger.ErrorContext(ctx, "youtube video listing failed", attrs...)

	if g.recorder == nil {
		return
	}
	rec := models.FailureRecord{
		RequestID:    requestID,
		Kind:         string(gerr.Kind),
		Op:           gerr.Op,
		Status:       gerr.Status,
		Message:      gerr.Error(),
		UpstreamBody: gerr.Diagnostic,
		CreatedAt:    time.Now().UTC(),
	}
	// A cancelled request must not prevent the record from being written.
	if rerr := g.recorder.RecordFailure(context.WithoutCancel(ctx), rec); rerr != nil {
		g.logger.WarnContext(ctx, "failed to record gateway failure",
			"error", rerr.Error(),
			"request_id", requestID,
		)
	}
}
