package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"locallens/cmd/fx/account_fx"
	"locallens/cmd/fx/content_fx"
	"locallens/cmd/fx/controllers_fx"
	"locallens/cmd/fx/db_fx"
	"locallens/cmd/fx/directions_fx"
	"locallens/cmd/fx/itinerary_fx"
	"locallens/cmd/fx/pois_fx"
	"locallens/cmd/fx/preferences_fx"
	"locallens/internal/api/controllers"
	"locallens/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		preferences_fx.Module,
		content_fx.Module,
		pois_fx.Module,
		directions_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	preferencesController *controllers.PreferencesController,
	itineraryController *controllers.ItineraryController,
	contentController *controllers.ContentController,
	poisController *controllers.POIsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, preferencesController, itineraryController, contentController, poisController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	preferencesController *controllers.PreferencesController,
	itineraryController *controllers.ItineraryController,
	contentController *controllers.ContentController,
	poisController *controllers.POIsController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/signup", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	preferencesGroup := r.Group("/preferences", middleware.JWTAuthMiddleware())
	preferencesGroup.GET("", preferencesController.GetPreferences)
	preferencesGroup.PUT("", preferencesController.SavePreferences)

	itinerariesGroup := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itinerariesGroup.POST("/generate", itineraryController.GenerateItinerary)
	itinerariesGroup.GET("/current", itineraryController.GetCurrentItinerary)

	storiesGroup := r.Group("/stories")
	storiesGroup.GET("", contentController.GetStoriesByLocation)
	storiesGroup.GET("/:id", contentController.GetStoryByID)
	storiesGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), contentController.CreateStory)

	recommendationsGroup := r.Group("/recommendations")
	recommendationsGroup.GET("", contentController.GetRecommendationsByLocation)
	recommendationsGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), contentController.CreateRecommendation)

	poisGroup := r.Group("/pois")
	poisGroup.GET("", poisController.ListPois)
	poisGroup.GET("/:id", poisController.GetPoiById)
	poisGroup.POST("/search", poisController.SearchPois)
	poisGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), poisController.CreatePoi)
	poisGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), poisController.DeletePoi)
}
