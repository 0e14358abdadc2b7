package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	requestschema "horse.fit/fusiontranslate/internal/httpapi/schema"
	"horse.fit/fusiontranslate/internal/language"
	"horse.fit/fusiontranslate/internal/metrics"
	"horse.fit/fusiontranslate/internal/translation"
)

const maxRequestBytes = 1 << 20

type Options struct {
	Host               string
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
}

// DetectFunc guesses the language of a text for requests that set detect.
type DetectFunc func(text string) (language.Code, bool)

type Server struct {
	registry *translation.Registry
	metrics  *metrics.Metrics
	detect   DetectFunc
	logger   zerolog.Logger
	opts     Options
}

func NewServer(registry *translation.Registry, m *metrics.Metrics, detect DetectFunc, logger zerolog.Logger, opts Options) *Server {
	host := strings.TrimSpace(opts.Host)
	if host == "" {
		host = "0.0.0.0"
	}
	port := opts.Port
	if port <= 0 {
		port = 8090
	}
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 60 * time.Second
	}
	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &Server{
		registry: registry,
		metrics:  m,
		detect:   detect,
		logger:   logger,
		opts: Options{
			Host:               host,
			Port:               port,
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			ShutdownTimeout:    shutdownTimeout,
			CORSAllowedOrigins: opts.CORSAllowedOrigins,
		},
	}
}

// Handler builds the routed echo instance.
func (s *Server) Handler() (*echo.Echo, error) {
	if s == nil || s.registry == nil {
		return nil, fmt.Errorf("server is not initialized")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit("1M"))
	if origins := s.opts.CORSAllowedOrigins; len(origins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       3600,
		}))
	}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Str("remote_ip", v.RemoteIP).
					Str("request_id", v.RequestID).
					Msg("http request failed")
				return nil
			}

			s.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("http request")
			return nil
		},
	}))

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/v1")
	api.GET("/providers", s.handleProviders)
	api.GET("/languages", s.handleLanguages)
	api.POST("/translate", s.handleTranslate)

	return e, nil
}

func (s *Server) Start(ctx context.Context) error {
	e, err := s.Handler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", addr).Msg("fusiontranslate api server started")

	if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start server: %w", err)
	}
	s.logger.Info().Msg("fusiontranslate api server stopped")
	return nil
}

func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch v := he.Message.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				message = v
			}
		default:
			if text := strings.TrimSpace(http.StatusText(status)); text != "" {
				message = text
			}
		}
	} else if err != nil {
		s.logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("unhandled handler error")
	}

	if status >= 500 {
		_ = internalError(c, "Internal server error")
		return
	}
	_ = fail(c, status, message, nil)
}

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service":          "fusiontranslate",
		"time":             time.Now().UTC(),
		"default_provider": s.registry.DefaultProvider(),
	})
}

type providerItem struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
	Default    bool   `json:"default"`
}

func (s *Server) handleProviders(c echo.Context) error {
	configured := make(map[string]struct{})
	for _, name := range s.registry.ProviderNames() {
		configured[name] = struct{}{}
	}

	items := make([]providerItem, 0, len(translation.Kinds()))
	for _, kind := range translation.Kinds() {
		_, ok := configured[kind.String()]
		items = append(items, providerItem{
			Name:       kind.String(),
			Configured: ok,
			Default:    kind.String() == s.registry.DefaultProvider(),
		})
	}
	return success(c, map[string]any{
		"items": items,
	})
}

func (s *Server) handleLanguages(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("provider"))
	if name == "" {
		name = s.registry.DefaultProvider()
	}
	kind, err := translation.ParseKind(name)
	if err != nil {
		return s.translationError(c, err)
	}
	return success(c, map[string]any{
		"provider": kind.String(),
		"items":    translation.LanguageOptions(kind),
	})
}

type translateResponse struct {
	Provider       string   `json:"provider"`
	Lang           string   `json:"lang"`
	DetectedSource string   `json:"detected_source,omitempty"`
	Text           *string  `json:"text,omitempty"`
	Texts          []string `json:"texts,omitempty"`
	LatencyMs      int64    `json:"latency_ms"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxRequestBytes))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Failed to read request body", nil)
	}

	req, err := requestschema.ValidateTranslateRequest(body)
	if err != nil {
		var ve *requestschema.ValidationError
		if errors.As(err, &ve) {
			return failValidation(c, ve.Fields)
		}
		s.logger.Error().Err(err).Msg("validate translate request failed")
		return internalError(c, "Failed to validate request")
	}

	translator, err := s.registry.Translator(req.Provider)
	if err != nil {
		return s.translationError(c, err)
	}

	source := req.SourceCode
	if source == language.Undetermined && req.Detect && s.detect != nil {
		sample := strings.Join(req.Texts, "\n")
		if req.Text != nil {
			sample = *req.Text
		}
		if detected, ok := s.detect(sample); ok {
			source = detected
		}
	}

	ctx := c.Request().Context()
	out := translateResponse{Provider: translator.Kind().String()}
	if req.IsBatch() {
		resp, err := translator.TranslateBatch(ctx, translation.BatchRequest{
			Texts:  req.Texts,
			Source: source,
			Target: req.TargetCode,
		})
		if err != nil {
			return s.translationError(c, err)
		}
		out.Texts = resp.Texts
		out.Lang = resp.Lang.String()
		out.DetectedSource = detectedTag(resp.DetectedSource, source, req.SourceCode)
		out.LatencyMs = resp.LatencyMs
	} else {
		resp, err := translator.Translate(ctx, translation.Request{
			Text:   *req.Text,
			Source: source,
			Target: req.TargetCode,
		})
		if err != nil {
			return s.translationError(c, err)
		}
		out.Text = &resp.Text
		out.Lang = resp.Lang.String()
		out.DetectedSource = detectedTag(resp.DetectedSource, source, req.SourceCode)
		out.LatencyMs = resp.LatencyMs
	}
	return success(c, out)
}

// detectedTag prefers the provider's report, then a local detection result.
func detectedTag(reported, used, requested language.Code) string {
	if reported != language.Undetermined {
		return reported.String()
	}
	if used != requested {
		return used.String()
	}
	return ""
}

// statusFor maps a translation failure class onto an HTTP status.
func statusFor(err error) int {
	switch translation.ClassOf(err) {
	case translation.ErrUnmappableLanguage:
		return http.StatusBadRequest
	case translation.ErrInputTooLarge:
		return http.StatusRequestEntityTooLarge
	case translation.ErrUnrecognizedProvider:
		return http.StatusNotFound
	case translation.ErrMissingCredentials:
		return http.StatusServiceUnavailable
	case translation.ErrProviderRejected,
		translation.ErrTransport,
		translation.ErrEmptyResult,
		translation.ErrUndecodableLanguage,
		translation.ErrSegmentMismatch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) translationError(c echo.Context, err error) error {
	status := statusFor(err)
	data := map[string]any{}
	if class := translation.ClassOf(err); class != nil {
		data["class"] = class.Error()
	}
	var te *translation.Error
	if errors.As(err, &te) {
		if te.Provider.IsValid() {
			data["provider"] = te.Provider.String()
		}
		if te.Code != "" {
			data["provider_code"] = te.Code
		}
		if te.Limit != 0 {
			data["size"] = te.Size
			data["limit"] = te.Limit
		}
	}

	switch {
	case status == http.StatusNotFound:
		return failNotFound(c, err.Error())
	case status < 500:
		return fail(c, status, err.Error(), data)
	case status == http.StatusInternalServerError:
		s.logger.Error().Err(err).Msg("translate request failed")
		return internalError(c, "Internal server error")
	default:
		s.logger.Warn().Err(err).Int("status", status).Msg("translate request failed")
		return errorWithStatus(c, status, err.Error(), data)
	}
}
