package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/drafts"
	"resume-builder/internal/exports"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/web"
)

const (
	// APIBase prefixes every JSON route.
	APIBase = "/api/v1"

	rateGroupDefault = "DEFAULT"
	rateGroupExport  = "EXPORT"
	rateGroupDraft   = "DRAFT"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	DraftHandler  *drafts.Handler
	ExportHandler *exports.Handler
	WebHandler    *web.Handler
	Health        *health.Service
	Limiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	rules := map[string]middleware.RateLimitRule{}
	if deps.Config.ExportRatePerSec > 0 && deps.Config.ExportRateBurst > 0 {
		rules[rateGroupExport] = middleware.RateLimitRule{
			Rate:  deps.Config.ExportRatePerSec,
			Burst: deps.Config.ExportRateBurst,
		}
	}
	if deps.Config.DraftRatePerSec > 0 && deps.Config.DraftRateBurst > 0 {
		rules[rateGroupDraft] = middleware.RateLimitRule{
			Rate:  deps.Config.DraftRatePerSec,
			Burst: deps.Config.DraftRateBurst,
		}
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroup,
			Rules:        rules,
			Limiter:      deps.Limiter,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group(APIBase)
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})

	if deps.DraftHandler != nil {
		deps.DraftHandler.RegisterRoutes(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(api)
	}
	if deps.WebHandler != nil {
		deps.WebHandler.RegisterPage(r)
		deps.WebHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// rateGroup puts the two render routes in the export bucket and every route
// that allocates a draft in the draft bucket. Edits to an existing draft stay
// unthrottled so typing in the form never hits the limit.
func rateGroup(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case strings.Contains(path, "/export/"):
		return rateGroupExport
	case c.Request.Method == http.MethodPost && path == APIBase+"/drafts":
		return rateGroupDraft
	case c.Request.Method == http.MethodGet && path == "/":
		return rateGroupDraft
	default:
		return rateGroupDefault
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
