package controller

import (
	"errors"
	"neuroscreen_backend/internal/service"
	"neuroscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// GetResults godoc
// @Summary Aggregated screening results
// @Description Returns the latest questionnaire outcome and every recorded modality result
// @Tags results
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AggregatedResults}
// @Router /api/results [get]
func (c *ResultController) GetResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	agg, err := c.ResultService.Aggregate(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, agg)
}

// GetCombined godoc
// @Summary Combined screening score
// @Description Returns the weighted score across all three modality tests
// @Tags results
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 409 {object} util.Response "Not all modality tests are completed"
// @Router /api/results/combined [get]
func (c *ResultController) GetCombined(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	combined, set, err := c.ResultService.Combined(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrResultsIncomplete) {
			util.Conflict(ctx, util.ErrResultsIncomplete.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"combined":   combined,
		"modalities": set,
	})
}

// Reset godoc
// @Summary Reset all screening data
// @Description Deletes questionnaire submissions, modality results, reports and archived recordings
// @Tags results
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/results [delete]
func (c *ResultController) Reset(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ResultService.Reset(ctx.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reset": true})
}
