package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uynm/backend/internal/app/controllers"
	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	contactController *controllers.ContactController,
	memberController *controllers.MemberController,
	newsletterController *controllers.NewsletterController,
	eventController *controllers.EventController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Liveness probe
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now(),
		})
	})

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/reset-password", authController.RequestPasswordReset)
		auth.POST("/reset-password/confirm", authController.ConfirmPasswordReset)
	}

	// --- Public form intake routes ---
	api.POST("/contact", contactController.CreateContact)
	api.POST("/members/register", memberController.RegisterMember)

	newsletter := api.Group("/newsletter")
	{
		newsletter.POST("/subscribe", newsletterController.Subscribe)
		newsletter.DELETE("/unsubscribe", newsletterController.Unsubscribe)
	}

	// --- Public event routes ---
	api.GET("/events", eventController.ListEvents)
	api.GET("/events/:id", eventController.GetEvent)
	api.POST("/events/:id/register", eventController.RegisterForEvent)

	// --- Admin routes ---
	admin := api.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.GET("/contact", contactController.ListContacts)
		admin.PATCH("/contact/:id/status", contactController.UpdateContactStatus)

		admin.GET("/members", memberController.ListMembers)
		admin.GET("/members/:id", memberController.GetMember)

		admin.GET("/newsletter/subscribers", newsletterController.ListSubscribers)

		admin.POST("/events", eventController.CreateEvent)
		admin.PUT("/events/:id", eventController.UpdateEvent)
		admin.DELETE("/events/:id", eventController.DeleteEvent)
		admin.GET("/events/:id/registrations", eventController.ListRegistrations)
	}

	// Unknown paths get the same envelope as everything else
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Endpoint not found")))
	})
}
