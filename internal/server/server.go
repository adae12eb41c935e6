// Package server serves the site: server-rendered pages, static assets, the
// optional wasm client bundle and a health endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/atomic"

	"github.com/vcrobe/signspeech/internal/app"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/web"
)

// Options configures a Server.
type Options struct {
	// Language is the site's configured language, used when the request's
	// Accept-Language does not match the bundle.
	Language string
	// WasmDir, when set, is served under /app and the pages load the client from it.
	WasmDir string
	Logger  *slog.Logger
	// Now is the clock used for rendering. Defaults to time.Now.
	Now func() time.Time
	// Bundle defaults to the embedded message bundle.
	Bundle *i18n.Bundle
}

// Server is the site HTTP server.
type Server struct {
	echo   *echo.Echo
	opts   Options
	bundle *i18n.Bundle
	logger *slog.Logger

	renders  atomic.Int64
	notFound atomic.Int64
}

// New builds the server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	bundle := opts.Bundle
	if bundle == nil {
		var err error
		bundle, err = locale.NewBundle()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		opts:   opts,
		bundle: bundle,
		logger: opts.Logger,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			id, err := newRequestID()
			if err != nil {
				s.logger.Warn("request id generation failed", "err", err)
				return ""
			}
			return id
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				s.logger.Error("request failed", append(attrs, "err", v.Error)...)
				return nil
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))

	e.GET("/healthz", s.health)
	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))
	if opts.WasmDir != "" {
		e.Static("/app", opts.WasmDir)
	}
	e.GET("/*", s.page)

	return s, nil
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and serves until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("HTTP server listening", "addr", addr, "wasm", s.opts.WasmDir != "")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Stats reports the number of pages rendered and how many were not found.
func (s *Server) Stats() (renders, notFound int64) {
	return s.renders.Load(), s.notFound.Load()
}

type healthResponse struct {
	Status   string `json:"status"`
	Renders  int64  `json:"renders"`
	NotFound int64  `json:"not_found"`
}

func (s *Server) health(c echo.Context) error {
	renders, notFound := s.Stats()
	return c.JSON(http.StatusOK, healthResponse{
		Status:   "ok",
		Renders:  renders,
		NotFound: notFound,
	})
}

func (s *Server) page(c echo.Context) error {
	req := c.Request()
	catalog := locale.New(s.bundle, req.Header.Get("Accept-Language"), s.opts.Language)

	// Route on the escaped path: a "%23" in the request is part of the path,
	// never a fragment separator, so it can only miss the table.
	path := req.URL.EscapedPath()
	view, err := app.Render(path, s.opts.Now(), catalog)
	if err != nil {
		return fmt.Errorf("render %q: %w", path, err)
	}
	s.renders.Inc()

	status := http.StatusOK
	if view.Kind == app.ViewNotFound {
		s.notFound.Inc()
		status = http.StatusNotFound
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	res.WriteHeader(status)
	return Document(DocumentProps{
		View:     view,
		Catalog:  catalog,
		WithWasm: s.opts.WasmDir != "",
	}).Render(res)
}
