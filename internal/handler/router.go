package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-agenda/internal/handler/api"
	"clinic-agenda/internal/handler/middleware"
	"clinic-agenda/internal/pkg/config"
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
	availabilityHandler *api.AvailabilityHandler,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	actionHandler *api.ActionHandler,
	jobsHandler *api.JobsHandler,
	operatorMiddleware *middleware.OperatorMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, availabilityHandler, checkoutHandler, webhookHandler, actionHandler, jobsHandler, operatorMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	actionHandler *api.ActionHandler,
	jobsHandler *api.JobsHandler,
	operatorMiddleware *middleware.OperatorMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public/:token")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: availabilityHandler.ListSlots},
				{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.CreateCheckout},
			})
		}

		webhooks := apiGroup.Group("/webhooks")
		webhooks.Use(middleware.VerifyWebhookSignature(cfg.Gateway.WebhookSecret))
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/payments", Handler: webhookHandler.HandleGatewayEvent},
			})
		}

		bookingActions := apiGroup.Group("/bookings/actions/:token")
		{
			addRoutes(bookingActions, []route{
				{Method: http.MethodGet, Path: "", Handler: actionHandler.GetBooking},
				{Method: http.MethodPost, Path: "/cancel", Handler: actionHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/reschedule", Handler: actionHandler.RescheduleBooking},
			})
		}

		jobs := apiGroup.Group("/jobs")
		jobs.Use(operatorMiddleware.RequireOperator())
		{
			addRoutes(jobs, []route{
				{Method: http.MethodPost, Path: "/reap", Handler: jobsHandler.RunReaper},
				{Method: http.MethodPost, Path: "/sweep", Handler: jobsHandler.RunSweep},
			})
		}
	}
}

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
