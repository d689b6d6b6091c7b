package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/app/services"
	"github.com/uynm/backend/internal/middleware"
)

// NewsletterController handles newsletter subscription endpoints
type NewsletterController struct {
	newsletterService *services.NewsletterService
}

// NewNewsletterController creates a new NewsletterController
func NewNewsletterController(newsletterService *services.NewsletterService) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
	}
}

// Subscribe handles a public newsletter subscription
func (c *NewsletterController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	sub, reactivated, err := c.newsletterService.Subscribe(ctx, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if reactivated {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sub, "Welcome back! Your subscription has been reactivated."))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(sub, "You have been subscribed to our newsletter!"))
}

// Unsubscribe deactivates a newsletter subscription
func (c *NewsletterController) Unsubscribe(ctx *gin.Context) {
	var req dto.UnsubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	if err := c.newsletterService.Unsubscribe(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("You have been unsubscribed from our newsletter."))
}

// ListSubscribers returns all subscriber rows with counts
func (c *NewsletterController) ListSubscribers(ctx *gin.Context) {
	subs, total, active, err := c.newsletterService.ListSubscribers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SubscriberListData{
		Subscribers: subs,
		Total:       total,
		Active:      active,
	}, "Subscribers retrieved successfully"))
}
