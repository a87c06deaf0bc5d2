package router

import (
	"log"

	"agendai/config"
	"agendai/controllers"
	"agendai/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares:
// public auth routes + authenticated routes + admin routes (Adminizer).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// Public (no auth)
	auth := r.Group("/auth")
	auth.POST("/signup", Logger(), controllers.SignUp)
	auth.POST("/signin", Logger(), controllers.SignIn)
	auth.POST("/forgot-password", Logger(), controllers.ForgotPassword)
	auth.POST("/validate-token", Logger(), controllers.ValidateResetToken)
	auth.POST("/reset-password", Logger(), controllers.ResetPassword)

	// Authenticated routes (token required)
	authed := r.Group("")
	authed.Use(controllers.AuthRequired())

	// Self profile
	authed.GET("/user/me", Logger(), controllers.Me)
	authed.PUT("/user/me", Logger(), controllers.UpdateMe)
	authed.DELETE("/user/me", Logger(), controllers.DeleteMe)

	// Tasks (always scoped to the caller)
	authed.POST("/tasks", Logger(), controllers.CreateTask)
	authed.GET("/tasks", Logger(), controllers.ListTasks)
	authed.GET("/tasks/:id", Logger(), controllers.GetTask)
	authed.PUT("/tasks/:id", Logger(), controllers.UpdateTask)
	authed.DELETE("/tasks/:id", Logger(), controllers.DeleteTask)

	// Agent (Lucy)
	authed.POST("/agent/schedule", Logger(), controllers.AgentSchedule)

	// Admin routes
	admin := authed.Group("/admin")
	admin.Use(Adminizer())
	admin.GET("/users/:id", Logger(), controllers.AdminGetUser)
	admin.PUT("/users/:id", Logger(), controllers.AdminUpdateUser)
	admin.DELETE("/users/:id", Logger(), controllers.AdminDeleteUser)

	log.Printf("Routes initialized")
}
