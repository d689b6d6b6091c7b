package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/app/services"
	"github.com/uynm/backend/internal/middleware"
)

// ContactController handles contact form endpoints
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// CreateContact handles a public contact form submission
func (c *ContactController) CreateContact(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	contact, err := c.contactService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ContactCreatedData{
		ID:     contact.ID,
		Status: string(contact.Status),
	}, "Thank you for your message! We will get back to you soon."))
}

// ListContacts returns all contact messages, newest first
func (c *ContactController) ListContacts(ctx *gin.Context) {
	contacts, err := c.contactService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts, "Contact messages retrieved successfully"))
}

// UpdateContactStatus sets the status of a contact message
func (c *ContactController) UpdateContactStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact ID").WithField("id")))
		return
	}

	var req dto.UpdateContactStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	if err := c.contactService.UpdateStatus(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Contact status updated successfully"))
}
