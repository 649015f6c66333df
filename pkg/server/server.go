// Package server exposes the develop stage over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/pipeline"
	"github.com/user/instantfilm/pkg/ports"
	"github.com/user/instantfilm/pkg/stages/develop"
)

const (
	// DefaultMaxUploadBytes limits the multipart body of a develop request.
	DefaultMaxUploadBytes = 200 << 20

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
	uploadField     = "image"
)

// Options configures a Server.
type Options struct {
	// Quality is the JPEG quality of developed photos.
	Quality int
	// MaxUploadBytes limits the request body. <= 0 uses DefaultMaxUploadBytes.
	MaxUploadBytes int64
	// MaxConcurrent limits photos developed at the same time. <= 0 uses
	// one per CPU.
	MaxConcurrent int
	// RatePerMinute limits develop requests per client IP. <= 0 disables
	// the limit.
	RatePerMinute int
	// Burst is the number of requests a client may send at once. <= 0 uses
	// RatePerMinute.
	Burst int
}

// Server serves POST /api/v1/develop and GET /healthz.
type Server struct {
	stage   pipeline.Developer
	logger  ports.Logger
	opts    Options
	handler http.Handler
}

// New creates a Server around the develop stage.
func New(stage pipeline.Developer, logger ports.Logger, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = runtime.NumCPU()
	}
	s := &Server{
		stage:  pipeline.Limit(stage, opts.MaxConcurrent),
		logger: logger.WithComponent("server"),
		opts:   opts,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestID(), s.accessLog())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := engine.Group("/api/v1")
	if s.opts.RatePerMinute > 0 {
		api.Use(s.rateLimit(newClientLimiter(s.opts.RatePerMinute, s.opts.Burst)))
	}
	api.POST("/develop", s.develop)

	engine.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "You're looking at a film that cannot be developed properly.")
	})
	return engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("%s %s %d (%d ms) [%s]",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Milliseconds(), c.GetString(requestIDKey))
	}
}

// develop frames the uploaded "image" field and returns it as a JPEG.
func (s *Server) develop(c *gin.Context) {
	id := c.GetString(requestIDKey)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxUploadBytes)

	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.logger.Warn("Rejected upload over %d bytes [%s]", s.opts.MaxUploadBytes, id)
			c.String(http.StatusRequestEntityTooLarge, "upload exceeds %d bytes", s.opts.MaxUploadBytes)
			return
		}
		c.String(http.StatusBadRequest, "expected file upload with field name 'image'")
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.logger.Error("Failed to accept upload: %s [%s]", err, id)
		c.String(http.StatusInternalServerError, "cannot accept upload file")
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		s.logger.Error("Failed to accept upload: %s [%s]", err, id)
		c.String(http.StatusInternalServerError, "cannot accept upload file")
		return
	}

	pad, _ := strconv.ParseBool(c.DefaultQuery("pad", "false"))
	opts := pipeline.DevelopOptions{
		Style:     c.Query("painter"),
		Position:  film.ParsePosition(c.Query("pos")),
		PadAround: pad,
		Format:    ports.FormatJPEG,
		Quality:   s.opts.Quality,
	}
	s.logger.Debug("Developing upload %s (%d bytes) with painter %q, position %s, padding %t [%s]",
		fh.Filename, len(data), opts.Style, opts.Position, opts.PadAround, id)

	result, err := s.stage.Execute(c.Request.Context(), pipeline.DevelopInput{
		Name:    id,
		Data:    data,
		Options: opts,
	})
	if err != nil {
		status, msg := errorResponse(err)
		s.logger.Error("Failed to develop upload: %s [%s]", err, id)
		c.String(status, msg)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="image.jpeg"`)
	c.Data(http.StatusOK, "image/jpeg", result.Data)
}

// errorResponse maps a develop failure to a status code and message.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, develop.ErrMetadata):
		return http.StatusBadRequest, "cannot parse EXIF from file"
	case errors.Is(err, develop.ErrDecode):
		return http.StatusBadRequest, "cannot read upload file as image"
	case errors.Is(err, develop.ErrPaint):
		return http.StatusInternalServerError, "cannot paint new image"
	default:
		return http.StatusInternalServerError, "cannot handle upload image"
	}
}
