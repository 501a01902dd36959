package directions_fx

import (
	"go.uber.org/fx"
	"locallens/internal/services"
)

var Module = fx.Provide(provideDirectionsProvider, provideTransportEstimator)

func provideDirectionsProvider() services.DirectionsProvider {
	return services.NewGoogleDirectionsClient()
}

func provideTransportEstimator(provider services.DirectionsProvider) services.TransportEstimatorInterface {
	return services.NewTransportEstimator(provider)
}
