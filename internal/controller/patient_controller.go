package controller

import (
	"errors"
	"neuroscreen_backend/internal/service"
	"neuroscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	PatientService *service.PatientService
}

func NewPatientController(patientService *service.PatientService) *PatientController {
	return &PatientController{PatientService: patientService}
}

// SaveProfile godoc
// @Summary Save the intake profile
// @Description Creates or replaces the caller's patient intake form
// @Tags patient
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ProfileRequest true "Intake data"
// @Success 200 {object} util.Response{data=model.PatientProfile}
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/profile [put]
func (c *PatientController) SaveProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.PatientService.SaveProfile(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// GetProfile godoc
// @Summary Get the intake profile
// @Tags patient
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.PatientProfile}
// @Failure 404 {object} util.Response "No profile on record"
// @Router /api/profile [get]
func (c *PatientController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.PatientService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// LanguageRequest selects the preferred report language.
type LanguageRequest struct {
	Language string `json:"language" binding:"required,oneof=ar en"`
}

// SetLanguage godoc
// @Summary Set the preferred language
// @Tags patient
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body LanguageRequest true "Language code"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/profile/language [put]
func (c *PatientController) SetLanguage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PatientService.SetLanguage(claims.UserID, req.Language); err != nil {
		switch {
		case errors.Is(err, util.ErrUnsupportedLanguage):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"language": req.Language})
}
