package components

import (
	"equiplend/internal/handler"
	"equiplend/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewTimelineHandler,
	),
	fx.Invoke(handler.NewRouter),
)
