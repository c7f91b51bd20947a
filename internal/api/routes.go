package api

import (
	"net/http"
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=service_mocks_test.go -package=api_test coachmarket/internal/service AuthService,ProgramService,EnrollmentService,LogService,DashboardService,CheckInService,BetaSignupService

// Services bundles the business services the HTTP surface is built on.
type Services struct {
	Auth        service.AuthService
	Programs    service.ProgramService
	Enrollments service.EnrollmentService
	Logs        service.LogService
	Dashboards  service.DashboardService
	CheckIns    service.CheckInService
	BetaSignups service.BetaSignupService
}

// RouteOptions carries the transport-level settings of the router.
type RouteOptions struct {
	AllowedOrigins []string
	Cookie         SessionCookie
	Limiter        *RateLimiter
	AuthPerWindow  int
	BetaPerWindow  int
	LimitWindow    time.Duration
}

func SetupRoutes(router *gin.Engine, services Services, opts RouteOptions) {
	useJSONFieldNames()
	router.Use(RequestLogger())
	if len(opts.AllowedOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = opts.AllowedOrigins
		config.AllowCredentials = true
		config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
		config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		router.Use(cors.New(config))
	}

	authHandler := NewAuthHandler(services.Auth, opts.Cookie)
	programHandler := NewProgramHandler(services.Programs, services.Enrollments)
	enrollmentHandler := NewEnrollmentHandler(services.Enrollments)
	logHandler := NewLogHandler(services.Logs)
	dashboardHandler := NewDashboardHandler(services.Dashboards)
	checkInHandler := NewCheckInHandler(services.CheckIns)
	betaHandler := NewBetaSignupHandler(services.BetaSignups)

	authMiddleware := AuthMiddleware(services.Auth, opts.Cookie.Name)
	authLimit := opts.Limiter.Limit("auth", opts.AuthPerWindow, opts.LimitWindow)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authLimit, authHandler.Register)
			authGroup.POST("/login", authLimit, authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
		}
		apiV1.POST("/beta-signups", opts.Limiter.Limit("beta_signup", opts.BetaPerWindow, opts.LimitWindow), betaHandler.Signup)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.PUT("/me/profile", authHandler.UpdateProfile)

		// --- Marketplace ---
		protected.GET("/programs", programHandler.ListPrograms)
		protected.GET("/programs/:programId", programHandler.GetProgram)

		// --- Coach Specific Routes ---
		coachGroup := protected.Group("/coach")
		coachGroup.Use(RoleMiddleware(domain.RoleCoach))
		{
			coachGroup.POST("/programs", programHandler.CreateProgram)
			coachGroup.GET("/programs", programHandler.ListMyPrograms)
			coachGroup.PUT("/programs/:programId", programHandler.UpdateProgram)
			coachGroup.DELETE("/programs/:programId", programHandler.DeleteProgram)
			coachGroup.GET("/programs/:programId/enrollments", programHandler.ListProgramEnrollments)

			coachGroup.PUT("/enrollments/:enrollmentId/customizations", enrollmentHandler.Customize)
			coachGroup.GET("/enrollments/:enrollmentId/checkins", checkInHandler.ListForCoach)

			coachGroup.GET("/dashboard", dashboardHandler.CoachDashboard)
		}

		// --- Client Specific Routes ---
		clientGroup := protected.Group("/client")
		clientGroup.Use(RoleMiddleware(domain.RoleClient))
		{
			clientGroup.POST("/enrollments", enrollmentHandler.Enroll)
			clientGroup.GET("/enrollments", enrollmentHandler.ListEnrollments)
			clientGroup.GET("/enrollments/:enrollmentId", enrollmentHandler.GetEnrollment)
			clientGroup.DELETE("/enrollments/:enrollmentId", enrollmentHandler.Deactivate)

			clientGroup.POST("/enrollments/:enrollmentId/workouts", logHandler.LogWorkout)
			clientGroup.GET("/enrollments/:enrollmentId/workouts", logHandler.ListWorkouts)
			clientGroup.POST("/enrollments/:enrollmentId/meals", logHandler.LogMeal)
			clientGroup.GET("/enrollments/:enrollmentId/meals", logHandler.ListMeals)
			clientGroup.PUT("/workouts/:logId", logHandler.UpdateWorkout)
			clientGroup.DELETE("/workouts/:logId", logHandler.DeleteWorkout)
			clientGroup.PUT("/meals/:logId", logHandler.UpdateMeal)
			clientGroup.DELETE("/meals/:logId", logHandler.DeleteMeal)

			clientGroup.POST("/enrollments/:enrollmentId/checkins/upload-url", checkInHandler.RequestUploadURL)
			clientGroup.POST("/enrollments/:enrollmentId/checkins", checkInHandler.ConfirmUpload)
			clientGroup.GET("/enrollments/:enrollmentId/checkins", checkInHandler.ListForClient)

			clientGroup.GET("/dashboard", dashboardHandler.ClientDashboard)
			clientGroup.GET("/progress", dashboardHandler.ClientProgress)
		}
	}
}
