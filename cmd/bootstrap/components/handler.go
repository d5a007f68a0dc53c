package components

import (
	"enrollhub/internal/handler"
	"enrollhub/internal/handler/api"
	"enrollhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEnrollmentHandler,
		api.NewCourseHandler,
		api.NewDiscountHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
