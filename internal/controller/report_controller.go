package controller

import (
	"errors"
	"neuroscreen_backend/internal/service"
	"neuroscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// Generate godoc
// @Summary Generate a medical report
// @Description Synthesizes a localized report from the latest questionnaire submission
// @Tags report
// @Produce  json
// @Security ApiKeyAuth
// @Param   lang query string false "Report language (ar or en, default ar)"
// @Success 201 {object} util.Response{data=model.MedicalReport}
// @Failure 400 {object} util.Response "Unsupported language"
// @Failure 409 {object} util.Response "No questionnaire submission on record"
// @Router /api/report [post]
func (c *ReportController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	lang := ctx.Query("lang")
	if lang == "" {
		lang = claims.Language
	}

	report, record, err := c.ReportService.Generate(claims.UserID, lang)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnsupportedLanguage):
			util.BadRequest(ctx, util.ErrUnsupportedLanguage.Error())
		case errors.Is(err, util.ErrNoScreening):
			util.Conflict(ctx, util.ErrNoScreening.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"id":       record.ID,
		"language": record.Language,
		"report":   report,
	})
}

// History godoc
// @Summary List generated reports
// @Tags report
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ReportRecord}
// @Router /api/report/history [get]
func (c *ReportController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ReportService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}
