package components

import (
	"clinic-agenda/internal/handler"
	"clinic-agenda/internal/handler/api"
	"clinic-agenda/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewActionHandler,
		api.NewJobsHandler,
		middleware.NewOperatorMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
