package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hireflow/internal/domain/user"
	"hireflow/internal/handler/api"
	"hireflow/internal/handler/middleware"
	"hireflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	candidateHandler *api.CandidateHandler,
	scheduleHandler *api.ScheduleHandler,
	publicScheduleHandler *api.PublicScheduleHandler,
	jobHandler *api.JobHandler,
	pipelineHandler *api.PipelineHandler,
	offerHandler *api.OfferHandler,
	teamHandler *api.TeamHandler,
	authMiddleware *middleware.AuthMiddleware,
	linkMiddleware *middleware.ScheduleLinkMiddleware,
	logger *middleware.Logger,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, candidateHandler, scheduleHandler, publicScheduleHandler,
		jobHandler, pipelineHandler, offerHandler, teamHandler, authMiddleware, linkMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	candidateHandler *api.CandidateHandler,
	scheduleHandler *api.ScheduleHandler,
	publicScheduleHandler *api.PublicScheduleHandler,
	jobHandler *api.JobHandler,
	pipelineHandler *api.PipelineHandler,
	offerHandler *api.OfferHandler,
	teamHandler *api.TeamHandler,
	authMiddleware *middleware.AuthMiddleware,
	linkMiddleware *middleware.ScheduleLinkMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	recruiterOnly := authMiddleware.RequireRoleAtLeast(user.RoleRecruiter)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		candidates := apiGroup.Group("/candidates")
		candidates.Use(authMiddleware.RequireAuth())
		{
			addRoutes(candidates, []route{
				{Method: http.MethodPost, Path: "", Handler: candidateHandler.CreateCandidate, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodGet, Path: "", Handler: candidateHandler.ListCandidates},
				{Method: http.MethodGet, Path: "/:id", Handler: candidateHandler.GetCandidate},
				{Method: http.MethodDelete, Path: "/:id", Handler: candidateHandler.DeleteCandidate, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodPatch, Path: "/:id/stage", Handler: candidateHandler.MoveStage, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodGet, Path: "/:id/timeline", Handler: candidateHandler.GetTimeline},
				{Method: http.MethodPost, Path: "/:id/timeline", Handler: candidateHandler.AddNote},
				{Method: http.MethodGet, Path: "/:id/schedules", Handler: scheduleHandler.ListByCandidate},
				{Method: http.MethodPost, Path: "/:id/offers", Handler: candidateHandler.CreateOffer, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodGet, Path: "/:id/offers", Handler: candidateHandler.ListOffers},
			})
		}

		schedules := apiGroup.Group("/schedules")
		schedules.Use(authMiddleware.RequireAuth())
		{
			addRoutes(schedules, []route{
				{Method: http.MethodPost, Path: "", Handler: scheduleHandler.CreateSchedule, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: scheduleHandler.GetSchedule},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: scheduleHandler.CancelSchedule, Mw: []gin.HandlerFunc{recruiterOnly}},
			})
		}

		jobs := apiGroup.Group("/jobs")
		jobs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(jobs, []route{
				{Method: http.MethodPost, Path: "", Handler: jobHandler.CreateJob, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodGet, Path: "", Handler: jobHandler.ListJobs},
				{Method: http.MethodGet, Path: "/:id", Handler: jobHandler.GetJob},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: jobHandler.UpdateJobStatus, Mw: []gin.HandlerFunc{recruiterOnly}},
			})
		}

		jdRequests := apiGroup.Group("/jd-requests")
		jdRequests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(jdRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: jobHandler.CreateJDRequest, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodGet, Path: "", Handler: jobHandler.ListJDRequests},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: jobHandler.UpdateJDRequestStatus, Mw: []gin.HandlerFunc{recruiterOnly}},
			})
		}

		processes := apiGroup.Group("/processes")
		processes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(processes, []route{
				{Method: http.MethodPost, Path: "", Handler: pipelineHandler.CreateProcess, Mw: []gin.HandlerFunc{recruiterOnly}},
				{Method: http.MethodGet, Path: "", Handler: pipelineHandler.ListProcesses},
				{Method: http.MethodGet, Path: "/:id", Handler: pipelineHandler.GetProcess},
			})
		}

		offers := apiGroup.Group("/offers")
		offers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(offers, []route{
				{Method: http.MethodPost, Path: "/:id/send", Handler: offerHandler.SendOffer, Mw: []gin.HandlerFunc{recruiterOnly}},
			})
		}

		team := apiGroup.Group("/team")
		team.Use(authMiddleware.RequireAuth())
		{
			addRoutes(team, []route{
				{Method: http.MethodGet, Path: "", Handler: teamHandler.ListTeam},
				{Method: http.MethodGet, Path: "/interviewers", Handler: teamHandler.ListInterviewers},
			})
		}
	}

	// Candidate-facing routes authenticate with the schedule link token, not a
	// session.
	publicGroup := engine.Group("/public/schedules")
	publicGroup.Use(linkMiddleware.RequireScheduleLink())
	{
		addRoutes(publicGroup, []route{
			{Method: http.MethodGet, Path: "", Handler: publicScheduleHandler.GetSchedule},
			{Method: http.MethodPost, Path: "/confirm", Handler: publicScheduleHandler.ConfirmSchedule},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
