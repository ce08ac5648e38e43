package handler

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"licportal/internal/cache"
	"licportal/internal/metrics"
	"licportal/internal/render"
	"licportal/internal/service"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	aggregateService service.AggregateService
	pageCache        cache.PageCache
	cacheTTL         time.Duration
	logger           *slog.Logger
}

func NewPageHandler(aggregateService service.AggregateService, pageCache cache.PageCache, cacheTTL time.Duration, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		aggregateService: aggregateService,
		pageCache:        pageCache,
		cacheTTL:         cacheTTL,
		logger:           logger,
	}
}

// RegisterRoutes registers the server-rendered routes
func (h *PageHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Landing)
}

// Landing serves the server-rendered landing page.
// GET /
//
// Cache hit: respond with the cached bytes. Miss: aggregate, assemble,
// store, respond. Any failure falls back entirely to the static error
// page; no partial documents, no detail in the response.
func (h *PageHandler) Landing(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic during landing render", "panic", r)
			h.respondError(c)
		}
	}()

	ctx := c.Request.Context()

	if html, ok := h.pageCache.Get(ctx, cache.KeyLanding); ok {
		metrics.PageCacheHits.Inc()
		h.respondHTML(c, html)
		return
	}
	metrics.PageCacheMisses.Inc()

	start := time.Now()
	snapshot := h.aggregateService.Snapshot(ctx)
	html, err := render.Landing(snapshot)
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("landing render failed", "error", err)
		h.respondError(c)
		return
	}

	h.pageCache.Set(ctx, cache.KeyLanding, html)
	h.respondHTML(c, html)
}

func (h *PageHandler) respondHTML(c *gin.Context, html string) {
	etag := fmt.Sprintf("%q", fmt.Sprintf("%x", sha256.Sum256([]byte(html))))
	maxAge := int(h.cacheTTL.Seconds())
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d, s-maxage=%d, stale-while-revalidate=%d", maxAge, maxAge, maxAge/2))
	c.Header("ETag", etag)

	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *PageHandler) respondError(c *gin.Context) {
	c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(render.ErrorPage))
}
