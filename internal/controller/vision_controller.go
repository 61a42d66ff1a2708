package controller

import (
	"errors"
	"neuroscreen_backend/internal/service"
	"neuroscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VisionController struct {
	VisionService *service.VisionService
}

func NewVisionController(visionService *service.VisionService) *VisionController {
	return &VisionController{VisionService: visionService}
}

// AnswerRequest is one staircase response.
// swagger:model AnswerRequest
type AnswerRequest struct {
	Seen       bool   `json:"seen"`
	Difficulty int    `json:"difficulty"`
	SessionID  string `json:"session_id" binding:"required"`
}

// Start godoc
// @Summary Start a vision test session
// @Description Opens an adaptive contrast-sensitivity session and returns the first stimulus
// @Tags vision
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.VisionRound}
// @Router /api/vision/start [get]
func (c *VisionController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	round, err := c.VisionService.Start(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, round)
}

// Answer godoc
// @Summary Answer the current stimulus
// @Description Advances the staircase; returns either the next round or the final outcome
// @Tags vision
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AnswerRequest true "Response"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Session not found or expired"
// @Router /api/vision/answer [post]
func (c *VisionController) Answer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	round, outcome, err := c.VisionService.Answer(ctx.Request.Context(), claims.UserID, req.SessionID, req.Seen)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if outcome != nil {
		util.Success(ctx, outcome)
		return
	}
	util.Success(ctx, round)
}
