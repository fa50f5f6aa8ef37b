package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"equiplend/internal/handler/api"
	"equiplend/internal/handler/middleware"
	"equiplend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, draftHandler *api.DraftHandler, timelineHandler *api.TimelineHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, draftHandler, timelineHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, draftHandler *api.DraftHandler, timelineHandler *api.TimelineHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: draftHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: draftHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: draftHandler.Abandon},
				{Method: http.MethodPost, Path: "/:id/dates", Handler: draftHandler.PickDates},
				{Method: http.MethodPost, Path: "/:id/dates/reset", Handler: draftHandler.ResetDates},
				{Method: http.MethodPost, Path: "/:id/pool/toggle", Handler: draftHandler.ToggleType},
				{Method: http.MethodPut, Path: "/:id/sets/:setId", Handler: draftHandler.AddSet},
				{Method: http.MethodDelete, Path: "/:id/sets/:setId", Handler: draftHandler.RemoveSet},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: draftHandler.Submit},
			})
		}

		timeline := apiGroup.Group("/timeline")
		{
			addRoutes(timeline, []route{
				{Method: http.MethodGet, Path: "/:year", Handler: timelineHandler.GetYear},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
