package controller

import (
	"errors"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/service"
	"neuroscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	AnalysisService *service.AnalysisService
}

func NewAnalysisController(analysisService *service.AnalysisService) *AnalysisController {
	return &AnalysisController{AnalysisService: analysisService}
}

// MotionRequest is the captured device-motion batch.
// swagger:model MotionRequest
type MotionRequest struct {
	Samples []model.MotionSample `json:"samples" binding:"required"`
}

// AnalyzeSpeech godoc
// @Summary Analyze a voice recording
// @Description Archives the uploaded recording, forwards it to the inference service and stores the returned score
// @Tags analysis
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Audio recording"
// @Success 200 {object} util.Response{data=model.ModalityResult}
// @Failure 400 {object} util.Response "Invalid upload"
// @Failure 502 {object} util.Response "Inference service unavailable"
// @Router /api/speech/analyze [post]
func (c *AnalysisController) AnalyzeSpeech(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing audio file")
		return
	}

	result, err := c.AnalysisService.ProcessSpeech(ctx.Request.Context(), claims.UserID, header)
	if err != nil {
		if errors.Is(err, util.ErrInferenceFailed) {
			util.BadGateway(ctx, util.ErrInferenceFailed.Error())
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, result)
}

// AnalyzeMotion godoc
// @Summary Analyze motion samples
// @Description Forwards captured device-motion samples to the inference service and stores the returned score
// @Tags analysis
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body MotionRequest true "Sensor sample batch"
// @Success 200 {object} util.Response{data=model.ModalityResult}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 502 {object} util.Response "Inference service unavailable"
// @Router /api/motion/analyze [post]
func (c *AnalysisController) AnalyzeMotion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req MotionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AnalysisService.ProcessMotion(ctx.Request.Context(), claims.UserID, req.Samples)
	if err != nil {
		if errors.Is(err, util.ErrInferenceFailed) {
			util.BadGateway(ctx, util.ErrInferenceFailed.Error())
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, result)
}
