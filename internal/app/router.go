package app

import (
	"neuroscreen_backend/docs"
	"neuroscreen_backend/internal/config"
	"neuroscreen_backend/internal/middleware"

	"neuroscreen_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerPatientRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerPatientRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)

	// Profile
	rg.GET("/profile", c.patient.GetProfile)
	rg.PUT("/profile", c.patient.SaveProfile)
	rg.PUT("/profile/language", c.patient.SetLanguage)

	// Questionnaire screening
	rg.GET("/screening/schema", c.screening.GetSchema)
	rg.POST("/screening/submit", c.screening.Submit)
	rg.GET("/screening/result", c.screening.GetResult)

	// Report synthesis
	rg.POST("/report", c.report.Generate)
	rg.GET("/report/history", c.report.History)

	// Vision staircase test
	rg.GET("/vision/start", c.vision.Start)
	rg.POST("/vision/answer", c.vision.Answer)

	// Inference-backed modalities
	rg.POST("/speech/analyze", c.analysis.AnalyzeSpeech)
	rg.POST("/motion/analyze", c.analysis.AnalyzeMotion)

	// Aggregated results
	rg.GET("/results", c.result.GetResults)
	rg.GET("/results/combined", c.result.GetCombined)
	rg.DELETE("/results", c.result.Reset)
}
