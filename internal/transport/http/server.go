package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "exercise-tracker/internal/app"
	"exercise-tracker/internal/bootstrap"
	"exercise-tracker/internal/cache"
	"exercise-tracker/internal/platform/rabbitmq"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", "web/index.html")
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	exerciseRepo := repository.NewExerciseRepository(app.MySQL)
	publisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.EventQueue)
	logCache := cache.NewLogCache(
		app.Redis,
		time.Duration(app.Config.Redis.LogTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.LogDirtyTTLSeconds)*time.Second,
	)
	trackerService := appsvc.NewTrackerService(userRepo, exerciseRepo, publisher, logCache)
	userHandler := handler.NewUserHandler(trackerService)
	exerciseHandler := handler.NewExerciseHandler(trackerService)

	api := router.Group("/api")
	api.GET("/users", userHandler.List)
	api.POST("/users", userHandler.Create)
	api.GET("/users/delete", userHandler.DeleteAll)
	api.POST("/users/:id/exercises", exerciseHandler.Create)
	api.GET("/users/:id/logs", exerciseHandler.Log)
	api.GET("/exercises/delete", exerciseHandler.DeleteAll)

	return router
}
