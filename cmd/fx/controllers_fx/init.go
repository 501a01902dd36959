package controllers_fx

import (
	"go.uber.org/fx"
	"locallens/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPreferencesController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewContentController),
	fx.Provide(controllers.NewPOIsController))
