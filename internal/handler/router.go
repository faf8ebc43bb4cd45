package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resort-checkout/internal/handler/api"
	"resort-checkout/internal/handler/middleware"
	"resort-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.ClientIDMiddleware(cfg.Cookie))
	{
		checkouts := apiGroup.Group("/checkouts")
		{
			addRoutes(checkouts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Start},
				{Method: http.MethodPost, Path: "/resume", Handler: h.Resume, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
				{Method: http.MethodPost, Path: "/:id/search", Handler: h.Search},
				{Method: http.MethodPost, Path: "/:id/new-search", Handler: h.NewSearch},
				{Method: http.MethodPost, Path: "/:id/back", Handler: h.Back},
				{Method: http.MethodPut, Path: "/:id/cabins/:cabinId", Handler: h.ToggleCabin},
				{Method: http.MethodPost, Path: "/:id/cabins/proceed", Handler: h.ProceedCabins},
				{Method: http.MethodGet, Path: "/:id/services", Handler: h.ListServices},
				{Method: http.MethodPut, Path: "/:id/services/:serviceId", Handler: h.ToggleService},
				{Method: http.MethodPost, Path: "/:id/services/proceed", Handler: h.ProceedServices},
				{Method: http.MethodPut, Path: "/:id/payment", Handler: h.UpdatePayment},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Confirm, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
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
