package controller

import (
	"errors"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/service"
	"neuroscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScreeningController struct {
	ScreeningService *service.ScreeningService
}

func NewScreeningController(screeningService *service.ScreeningService) *ScreeningController {
	return &ScreeningController{ScreeningService: screeningService}
}

// SubmitRequest wraps the raw answer map. Missing keys count as false
// and unknown keys are ignored by the scorer.
// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers map[string]bool `json:"answers" binding:"required"`
}

// GetSchema godoc
// @Summary Questionnaire schema
// @Description Returns the section layout, question keys and scoring maxima
// @Tags screening
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.SectionSchema}
// @Router /api/screening/schema [get]
func (c *ScreeningController) GetSchema(ctx *gin.Context) {
	util.Success(ctx, model.Sections())
}

// Submit godoc
// @Summary Submit questionnaire answers
// @Description Scores the answer map and stores the submission
// @Tags screening
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitRequest true "Answer map"
// @Success 201 {object} util.Response{data=model.QuestionnaireResult}
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/screening/submit [post]
func (c *ScreeningController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, _, err := c.ScreeningService.Submit(claims.UserID, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// GetResult godoc
// @Summary Latest questionnaire result
// @Tags screening
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.QuestionnaireResult}
// @Failure 404 {object} util.Response "No submission on record"
// @Router /api/screening/result [get]
func (c *ScreeningController) GetResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, _, err := c.ScreeningService.LatestResult(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoScreening) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
