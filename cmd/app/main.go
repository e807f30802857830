package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"sankofa/cmd/fx/account_fx"
	"sankofa/cmd/fx/controllers_fx"
	"sankofa/cmd/fx/db_fx"
	"sankofa/cmd/fx/itinerary_fx"
	"sankofa/cmd/fx/memcache_fx"
	"sankofa/cmd/fx/social_fx"
	"sankofa/cmd/fx/trip_fx"
	"sankofa/internal/api/controllers"
	"sankofa/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		social_fx.Module,
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
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	socialController *controllers.ActivitySocialController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Trace-ID"},
		ExposeHeaders:    []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, accountController, tripController, itineraryController, socialController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	socialController *controllers.ActivitySocialController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/all", middleware.JWTAuthMiddleware(), accountController.GetAllAccounts)

	trips := r.Group("/trips", middleware.JWTAuthMiddleware())
	trips.GET("/", tripController.ListTrips)
	trips.POST("/create/", tripController.CreateTrip)
	trips.POST("/join-by-token/", tripController.JoinByToken)
	trips.GET("/:tripId/", tripController.GetTripDetail)
	trips.POST("/:tripId/invite/", tripController.InviteMembers)
	trips.POST("/:tripId/accept-invite/", tripController.AcceptInvite)
	trips.POST("/:tripId/days/add/", itineraryController.AddDay)
	trips.POST("/:tripId/activities/add/", itineraryController.AddActivity)

	activities := r.Group("/activities", middleware.JWTAuthMiddleware())
	activities.PATCH("/:activityId/update/", itineraryController.UpdateActivity)
	activities.DELETE("/:activityId/delete/", itineraryController.DeleteActivity)
	activities.GET("/:activityId/messages/", socialController.ListMessages)
	activities.POST("/:activityId/messages/add/", socialController.PostMessage)
	activities.POST("/:activityId/like/", socialController.ToggleLike)
}
