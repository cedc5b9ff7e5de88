package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-insights/internal/domain/dashboard"
	"github.com/yanqian/weather-insights/internal/domain/forecast"
	apperrors "github.com/yanqian/weather-insights/pkg/errors"
	"github.com/yanqian/weather-insights/pkg/metrics"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	dashboardSvc dashboard.Service
	forecastSvc  forecast.Service
	sessions     *dashboard.SessionFactory
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(dashboardSvc dashboard.Service, forecastSvc forecast.Service, sessions *dashboard.SessionFactory, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		dashboardSvc: dashboardSvc,
		forecastSvc:  forecastSvc,
		sessions:     sessions,
		metrics:      m,
		logger:       logger.With("component", "http.handler"),
	}
}

// Dashboard renders the full dashboard for ?city=&unit=.
func (h *Handler) Dashboard(c *gin.Context) {
	var req dashboard.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.dashboardSvc.Build(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DashboardStream pushes the dashboard as Server-Sent Events: once immediately and
// again after every scheduled refresh, until the client goes away.
func (h *Handler) DashboardStream(c *gin.Context) {
	var req dashboard.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	ctx := c.Request.Context()
	session := h.sessions.New()
	defer session.Stop()

	if _, err := session.Start(ctx, req); err != nil {
		abortWithError(c, domainError(err))
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stream_unsupported", "streaming not supported", nil))
		return
	}
	// the server write timeout would otherwise cut the stream
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	if h.metrics != nil {
		h.metrics.ActiveStreams.Inc()
		defer h.metrics.ActiveStreams.Dec()
	}
	h.logger.Info("dashboard stream opened", "session", session.ID().String(), "city", req.City)

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("dashboard stream closed", "session", session.ID().String())
			return
		case resp, ok := <-session.Updates():
			if !ok {
				return
			}
			payload, err := json.Marshal(resp)
			if err != nil {
				h.logger.Error("marshal dashboard failed", "error", err)
				continue
			}
			fmt.Fprintf(c.Writer, "id: %s\nevent: dashboard\ndata: %s\n\n", session.ID(), payload)
			flusher.Flush()
		}
	}
}

// Evaluate runs the insight engine over a caller supplied dataset.
func (h *Handler) Evaluate(c *gin.Context) {
	var req dashboard.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.dashboardSvc.Evaluate(req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TrendingCities returns the most searched cities.
func (h *Handler) TrendingCities(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a positive integer", err))
			return
		}
		limit = parsed
	}

	items, err := h.forecastSvc.Trending(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	if items == nil {
		items = []forecast.TrendingCity{}
	}
	c.JSON(http.StatusOK, gin.H{"cities": items})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// domainError maps AppError codes onto HTTP statuses.
func domainError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	switch code {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, code, apperrors.MessageOf(err), err)
	case apperrors.CodeCityNotFound:
		return NewHTTPError(http.StatusNotFound, code, apperrors.MessageOf(err), err)
	case apperrors.CodeGeocodeError, apperrors.CodeForecastError:
		return NewHTTPError(http.StatusBadGateway, code, apperrors.MessageOf(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
