package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "edupress/internal/controller/http"
	"edupress/internal/repo/persistent"
	"edupress/internal/usecase"
	"edupress/pkg/config"
	"edupress/pkg/jwt"
	"edupress/pkg/logger"
	"edupress/pkg/mailer"
	"edupress/pkg/middleware"
	"edupress/pkg/queue"
	"edupress/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "edupress/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Repositories
	articleRepo := persistent.NewArticleRepository(db)
	userRepo := persistent.NewUserRepository(db)
	educatorRepo := persistent.NewEducatorRepository(db)
	subjectRepo := persistent.NewSubjectRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)
	reportRepo := persistent.NewReportRepository(db)
	auditRepo := persistent.NewAuditRepository(db)

	// queueClient may be nil when RabbitMQ is unavailable; the mailer then
	// drops mails with a warning instead of failing mutations.
	var mailPublisher mailer.Publisher
	if queueClient != nil {
		mailPublisher = queueClient
	}
	mail := mailer.New(mailPublisher, cfg.SenderEmail, log)

	// Use cases
	articleUseCase := usecase.NewArticleUseCase(articleRepo, educatorRepo, subjectRepo, s3Client, log)
	publicUseCase := usecase.NewPublicUseCase(articleRepo, educatorRepo, subjectRepo, interactionRepo, log)
	interactionUseCase := usecase.NewInteractionUseCase(articleRepo, educatorRepo, interactionRepo, reportRepo, log)
	subjectUseCase := usecase.NewSubjectUseCase(subjectRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	adminUseCase := usecase.NewAdminUseCase(articleRepo, userRepo, educatorRepo, subjectRepo, reportRepo, auditRepo, redisClient, mail, log)

	// HTTP handlers
	articleHandler := controller.NewArticleHandler(articleUseCase, log)
	publicHandler := controller.NewPublicHandler(publicUseCase, subjectUseCase, log)
	studentHandler := controller.NewStudentHandler(interactionUseCase, log)
	authHandler := controller.NewAuthHandler(authUseCase, log)
	adminHandler := controller.NewAdminHandler(adminUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		// No wildcard: browsers refuse "*" when credentials are allowed.
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Public reading surface. Optional auth so logged-in readers get their
	// like/bookmark state back and views are attributed to them.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.GET("/articles", publicHandler.ListArticles)
		public.GET("/articles/:id", publicHandler.GetArticle)
		public.GET("/articles/:id/related", publicHandler.RelatedArticles)
		public.GET("/educators/:id", publicHandler.GetEducator)
		public.GET("/subjects", publicHandler.ListSubjects)
		public.GET("/subjects/:id", publicHandler.GetSubject)
	}

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.PUT("/auth/password", authHandler.ChangePassword)

		authed.POST("/articles/:id/like", studentHandler.ToggleLike)
		authed.POST("/articles/:id/bookmark", studentHandler.ToggleBookmark)
		authed.POST("/articles/:id/report", studentHandler.ReportArticle)
		authed.GET("/me/likes", studentHandler.LikedArticles)
		authed.GET("/me/bookmarks", studentHandler.BookmarkedArticles)
		authed.GET("/me/history", studentHandler.ViewHistory)
	}

	educator := authed.Group("/educator")
	educator.Use(middleware.RequireRoles("educator"))
	{
		educator.POST("/articles", articleHandler.CreateArticle)
		educator.GET("/articles", articleHandler.ListMyArticles)
		educator.GET("/articles/:id", articleHandler.GetMyArticle)
		educator.PUT("/articles/:id", articleHandler.UpdateArticle)
		educator.DELETE("/articles/:id", articleHandler.DeleteArticle)
		educator.GET("/stats", articleHandler.MyStats)
		educator.GET("/profile", articleHandler.MyProfile)
		educator.PUT("/profile", articleHandler.UpdateMyProfile)
		educator.POST("/uploads/cover", articleHandler.UploadCoverImage)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRoles("admin"))
	{
		admin.GET("/articles/pending", adminHandler.ReviewQueue)
		admin.GET("/articles/flagged", adminHandler.FlaggedArticles)
		admin.GET("/articles/:id", adminHandler.GetArticle)
		admin.POST("/articles/:id/review", adminHandler.ReviewArticle)
		admin.DELETE("/articles/:id/flag", adminHandler.ClearFlag)

		admin.GET("/reports", adminHandler.ListReports)
		admin.PUT("/reports/:id", adminHandler.ResolveReport)

		admin.POST("/educators", adminHandler.CreateEducator)
		admin.GET("/educators", adminHandler.ListEducators)
		admin.PUT("/educators/:id", adminHandler.UpdateEducator)
		admin.DELETE("/educators/:id", adminHandler.DeactivateEducator)
		admin.POST("/educators/:id/reconcile", adminHandler.ReconcileEducatorStats)

		admin.POST("/subjects", adminHandler.CreateSubject)
		admin.PUT("/subjects/:id", adminHandler.UpdateSubject)
		admin.POST("/subjects/:id/reconcile", adminHandler.ReconcileSubjectCount)

		admin.GET("/stats", adminHandler.PlatformStats)
		admin.GET("/logs", adminHandler.AuditLog)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("EduPress starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("EduPress exited")
}
