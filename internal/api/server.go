package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yelnady/personal-portfolio/internal/config"
	"github.com/yelnady/personal-portfolio/internal/content"
	"github.com/yelnady/personal-portfolio/internal/middleware"
	"github.com/yelnady/personal-portfolio/internal/models"
)

const serviceName = "portfolio-api"

// VideoLister produces the recent video list served at /api/youtube
type VideoLister interface {
	ListRecentVideos(ctx context.Context) ([]models.VideoSummary, error)
}

// Server represents the API server
type Server struct {
	router    *gin.Engine
	videos    VideoLister
	portfolio *content.Portfolio
	errorMode ErrorMode
	logger    *slog.Logger
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, videos VideoLister, portfolio *content.Portfolio, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.PrometheusMiddleware(serviceName))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:    router,
		videos:    videos,
		portfolio: portfolio,
		errorMode: ErrorModeFor(cfg.VerboseErrors()),
		logger:    logger,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes := s.router.Group("/api")
	routes.GET("/youtube", s.getRecentVideos)

	// Portfolio content
	routes.GET("/resume", s.getResume)
	routes.GET("/projects", s.getProjects)
	routes.GET("/skills", s.getSkills)
	routes.GET("/socials", s.getSocials)
	routes.GET("/notes", s.getNotes)
	routes.GET("/notes/:slug", s.getNote)
	routes.GET("/publications", s.getPublications)
}

// Handler exposes the router, mainly for http.Server and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// getRecentVideos handles requests for the channel's latest uploads
func (s *Server) getRecentVideos(c *gin.Context) {
	videos, err := s.videos.ListRecentVideos(c.Request.Context())
	if err != nil {
		kind := KindOf(err)
		c.JSON(StatusForKind(kind), models.ErrorResponse{
			Error: FormatErrorMessage(kind, failureDetail(err), s.errorMode),
		})
		return
	}
	if videos == nil {
		videos = []models.VideoSummary{}
	}
	c.JSON(http.StatusOK, models.VideoListResponse{Videos: videos})
}

func failureDetail(err error) string {
	var gerr *GatewayError
	if errors.As(err, &gerr) && gerr.Detail != "" {
		return gerr.Detail
	}
	return err.Error()
}

func (s *Server) getResume(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio.Resume)
}

// getProjects handles ?category=, ?status= and ?featured=
func (s *Server) getProjects(c *gin.Context) {
	filter := content.ProjectFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	if featured := c.Query("featured"); featured != "" {
		b, err := strconv.ParseBool(featured)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "featured must be a boolean"})
			return
		}
		filter.FeaturedOnly = b
	}
	c.JSON(http.StatusOK, s.portfolio.FilterProjects(filter))
}

func (s *Server) getSkills(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio.SkillsByCategory(c.Query("category")))
}

func (s *Server) getSocials(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio.Socials)
}

// getNotes handles ?limit=
func (s *Server) getNotes(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, s.portfolio.RecentNotes(limit))
}

func (s *Server) getNote(c *gin.Context) {
	note, err := s.portfolio.NoteBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Note not found"})
			return
		}
		s.logger.ErrorContext(c.Request.Context(), "note lookup failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load note"})
		return
	}
	c.JSON(http.StatusOK, note)
}

func (s *Server) getPublications(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio.PublicationsByTopic(c.Query("topic")))
}
