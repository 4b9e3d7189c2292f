package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ragi-1016/Geektwitter/internal/config"
	"github.com/Ragi-1016/Geektwitter/internal/handlers"
	"github.com/Ragi-1016/Geektwitter/internal/middleware"
	"github.com/Ragi-1016/Geektwitter/internal/services"
	"github.com/Ragi-1016/Geektwitter/internal/templates"
)

// SetupRoutes assembles the engine: views, services, handlers, and the
// route table with its authenticated group.
func SetupRoutes(db *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.SetHTMLTemplate(templates.Load())

	sessions := services.NewSessionService(cfg)

	authHandler := handlers.NewAuthHandler(db, sessions, log)
	postHandler := handlers.NewPostHandler(db, log)

	// open routes
	r.GET("/", authHandler.Top)
	r.GET("/signup", authHandler.SignupForm)
	r.POST("/signup", authHandler.Signup)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)

	// session required
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired(sessions))
	{
		auth.GET("/index", postHandler.Index)
		auth.POST("/index", postHandler.Index)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/new", postHandler.NewForm)
		auth.POST("/new", postHandler.Create)
		auth.GET("/:id/edit", postHandler.EditForm)
		auth.POST("/:id/edit", postHandler.Update)
		auth.GET("/:id/delete", postHandler.Delete)
	}

	return r
}
