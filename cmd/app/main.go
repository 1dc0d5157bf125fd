package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dongseon/cmd/fx/controllers_fx"
	"dongseon/cmd/fx/db_fx"
	"dongseon/cmd/fx/geo_fx"
	"dongseon/cmd/fx/planner_fx"
	"dongseon/cmd/fx/region_fx"
	"dongseon/cmd/fx/venues_fx"
	"dongseon/internal/api/controllers"
	"dongseon/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		geo_fx.Module,
		region_fx.Module,
		venues_fx.Module,
		planner_fx.Module,
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
	regionsController *controllers.RegionsController,
	venuesController *controllers.VenuesController,
	planController *controllers.PlanController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, regionsController, venuesController, planController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	regionsController *controllers.RegionsController,
	venuesController *controllers.VenuesController,
	planController *controllers.PlanController) {

	regionsGroup := r.Group("/regions")
	regionsGroup.GET("", regionsController.ListRegions)
	regionsGroup.GET("/resolve", regionsController.ResolveRegions)

	venuesGroup := r.Group("/venues")
	venuesGroup.GET("", venuesController.ListVenues)
	venuesGroup.GET("/search", venuesController.SearchVenues)
	venuesGroup.GET("/:id", venuesController.GetVenueById)
	venuesGroup.POST("", middleware.JWTAuthMiddleware(), venuesController.CreateVenue)

	plansGroup := r.Group("/plans", middleware.JWTAuthMiddleware())
	plansGroup.POST("/optimize", planController.OptimizeRoute)
	plansGroup.POST("/itinerary", planController.PlanItinerary)
}
