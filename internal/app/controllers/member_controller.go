package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/app/services"
	"github.com/uynm/backend/internal/middleware"
)

// MemberController handles membership registration endpoints
type MemberController struct {
	memberService *services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService *services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// RegisterMember handles a public membership registration
func (c *MemberController) RegisterMember(ctx *gin.Context) {
	var req dto.RegisterMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationErrors(err)))
		return
	}

	member, err := c.memberService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.MemberRegisteredData{
		ID:       member.ID,
		FullName: member.FullName,
		Track:    string(member.InvolvementTrack),
	}, "Welcome aboard! Your registration has been received."))
}

// ListMembers returns member profiles with per-track counts, optionally
// filtered by the track query parameter
func (c *MemberController) ListMembers(ctx *gin.Context) {
	track := models.InvolvementTrack(ctx.Query("track"))

	members, stats, err := c.memberService.List(ctx, track)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MemberListData{
		Members: members,
		Stats:   stats,
	}, "Members retrieved successfully"))
}

// GetMember returns a single member profile
func (c *MemberController) GetMember(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member ID").WithField("id")))
		return
	}

	member, err := c.memberService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member, "Member retrieved successfully"))
}
