package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"club-app/internal/config"
	"club-app/internal/handler"
	"club-app/internal/repository"
	"club-app/internal/services"
	"club-app/internal/utils"
	"club-app/internal/utils/mongodb"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx, shutdownManager := utils.NewShutdownManager(context.Background(), cfg.Server.ShutdownTimeout)

	// MongoDB: the shared handle connects lazily, so force the first
	// connection here to fail fast on bad credentials.
	conn := mongodb.New(cfg.MongoDB)
	db, err := conn.Database(ctx)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return conn.Disconnect(ctx)
	})

	// Redis is optional: the news feed degrades to uncached reads.
	var cache *utils.RedisClient
	if rdb, err := utils.NewRedisClient(cfg.Redis.URL); err != nil {
		log.Printf("[CACHE] Redis unavailable, running without cache: %v", err)
	} else {
		cache = rdb
		shutdownManager.Register(func(ctx context.Context) error {
			log.Println("[SHUTDOWN] Closing Redis connection...")
			return rdb.Close()
		})
	}

	minioClient, err := utils.NewMinioClient(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket)
	if err != nil {
		log.Fatal("Failed to connect to MinIO:", err)
	}

	jwtUtil := utils.NewJWTUtil(cfg.Auth.JWTSecret, 0)
	mailer := services.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	squadRepo := repository.NewSquadRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	userRepo := repository.NewUserRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)
	logRepo := repository.NewLogRepository(db)

	// Services
	auditService := services.NewAuditService(archiveRepo, logRepo)
	auditQuery := services.NewAuditQueryService(archiveRepo, logRepo)
	teamService := services.NewTeamService(teamRepo)
	matchService := services.NewMatchService(matchRepo, teamRepo)
	playerService := services.NewPlayerService(playerRepo, minioClient, cfg.Minio.Bucket, cfg.Minio.PublicURL)
	squadService := services.NewSquadService(squadRepo)
	sponsorService := services.NewSponsorService(sponsorRepo, mailer)
	trainingService := services.NewTrainingService(trainingRepo)
	newsService := services.NewNewsService(newsRepo, cache)
	staffService := services.NewStaffService(staffRepo)
	mediaService := services.NewMediaService(mediaRepo, minioClient, cfg.Minio.Bucket, cfg.Minio.PublicURL)
	userService := services.NewUserService(userRepo, jwtUtil)

	// The club's own team record must exist before any match stats are served.
	if err := teamService.EnsureClub(ctx, cfg.Club.Name, cfg.Club.Alias); err != nil {
		log.Fatal("Failed to seed club record:", err)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService, auditService)
	teamHandler := handler.NewTeamHandler(teamService, auditService)
	matchHandler := handler.NewMatchHandler(matchService, auditService)
	playerHandler := handler.NewPlayerHandler(playerService, auditService)
	squadHandler := handler.NewSquadHandler(squadService, auditService)
	sponsorHandler := handler.NewSponsorHandler(sponsorService, auditService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	newsHandler := handler.NewNewsHandler(newsService, auditService)
	staffHandler := handler.NewStaffHandler(staffService, auditService)
	mediaHandler := handler.NewMediaHandler(mediaService, auditService)
	auditHandler := handler.NewAuditHandler(auditQuery)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/news", newsHandler.GetPublished)
	api.GET("/matches", matchHandler.GetAll)
	api.GET("/matches/:id", matchHandler.GetByID)
	api.GET("/matches/:id/stats", matchHandler.GetStats)
	api.GET("/players", playerHandler.GetAll)
	api.GET("/players/:id", playerHandler.GetByID)
	api.GET("/teams/club", teamHandler.GetClub)
	api.GET("/galleries", mediaHandler.GetGalleries)
	api.GET("/galleries/:id", mediaHandler.GetGalleryByID)
	api.GET("/highlights", mediaHandler.GetHighlights)
	api.GET("/staff", staffHandler.GetAll)

	authed := api.Group("/")
	authed.Use(utils.AuthMiddleware(jwtUtil))
	{
		authed.GET("/auth/me", authHandler.Me)

		editors := authed.Group("/")
		editors.Use(utils.RequireRoles("editor", "manager", "admin"))
		{
			editors.GET("/news/all", newsHandler.GetAll)
			editors.GET("/news/:id", newsHandler.GetByID)
			editors.POST("/news", newsHandler.Create)
			editors.PUT("/news/:id", newsHandler.Update)
			editors.DELETE("/news/:id", newsHandler.Delete)

			editors.POST("/galleries", mediaHandler.CreateGallery)
			editors.POST("/galleries/:id/images", mediaHandler.UploadGalleryImage)
			editors.DELETE("/galleries/:id", mediaHandler.DeleteGallery)
			editors.POST("/documents", mediaHandler.UploadDocument)
			editors.GET("/documents", mediaHandler.GetDocuments)
			editors.DELETE("/documents/:id", mediaHandler.DeleteDocument)
			editors.POST("/highlights", mediaHandler.CreateHighlight)
			editors.DELETE("/highlights/:id", mediaHandler.DeleteHighlight)
		}

		managers := authed.Group("/")
		managers.Use(utils.RequireRoles("manager", "admin"))
		{
			managers.POST("/players", playerHandler.Create)
			managers.PUT("/players/:id", playerHandler.Update)
			managers.DELETE("/players/:id", playerHandler.Delete)
			managers.POST("/players/:id/photo", playerHandler.UploadPhoto)

			managers.POST("/matches", matchHandler.Create)
			managers.PUT("/matches/:id", matchHandler.Update)
			managers.DELETE("/matches/:id", matchHandler.Delete)
			managers.POST("/matches/:id/goals", matchHandler.AddGoal)
			managers.DELETE("/matches/:id/goals/:goalId", matchHandler.RemoveGoal)
			managers.POST("/matches/:id/cards", matchHandler.AddCard)
			managers.DELETE("/matches/:id/cards/:cardId", matchHandler.RemoveCard)
			managers.POST("/matches/:id/injuries", matchHandler.AddInjury)
			managers.DELETE("/matches/:id/injuries/:injuryId", matchHandler.RemoveInjury)
			managers.PUT("/matches/:id/mvp", matchHandler.SetMVP)

			managers.GET("/teams", teamHandler.GetAll)
			managers.GET("/teams/:id", teamHandler.GetByID)
			managers.POST("/teams", teamHandler.Create)
			managers.PUT("/teams/:id", teamHandler.Update)

			managers.GET("/squads", squadHandler.GetAll)
			managers.GET("/squads/:id", squadHandler.GetByID)
			managers.POST("/squads", squadHandler.Create)
			managers.PUT("/squads/:id", squadHandler.Update)
			managers.DELETE("/squads/:id", squadHandler.Delete)

			managers.GET("/sponsors", sponsorHandler.GetAll)
			managers.GET("/sponsors/:id", sponsorHandler.GetByID)
			managers.POST("/sponsors", sponsorHandler.Create)
			managers.PUT("/sponsors/:id", sponsorHandler.Update)
			managers.DELETE("/sponsors/:id", sponsorHandler.Delete)
			managers.POST("/sponsors/:id/donations", sponsorHandler.RecordDonation)
			managers.GET("/sponsors/:id/donations", sponsorHandler.GetDonations)

			managers.GET("/trainings", trainingHandler.GetAll)
			managers.GET("/trainings/:id", trainingHandler.GetByID)
			managers.POST("/trainings", trainingHandler.Create)
			managers.PUT("/trainings/:id", trainingHandler.Update)
			managers.DELETE("/trainings/:id", trainingHandler.Delete)

			managers.GET("/staff/:id", staffHandler.GetByID)
			managers.POST("/staff", staffHandler.Create)
			managers.PUT("/staff/:id", staffHandler.Update)
			managers.DELETE("/staff/:id", staffHandler.Delete)
		}

		admins := authed.Group("/")
		admins.Use(utils.RequireRoles("admin"))
		{
			admins.GET("/users", userHandler.GetAll)
			admins.POST("/users", userHandler.Create)
			admins.PUT("/users/:id/role", userHandler.ChangeRole)
			admins.PUT("/users/:id/ban", userHandler.SetBanStatus(true))
			admins.PUT("/users/:id/unban", userHandler.SetBanStatus(false))
			admins.DELETE("/users/:id", userHandler.Delete)

			admins.DELETE("/teams/:id", teamHandler.Delete)

			admins.GET("/admin/logs", auditHandler.ListLogs)
			admins.GET("/admin/archives", auditHandler.ListArchives)
			admins.GET("/admin/archives/:source/:id", auditHandler.ArchiveHistory)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Club service running on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	for _, err := range shutdownManager.Wait() {
		log.Printf("[SHUTDOWN] Teardown error: %v", err)
	}
	log.Println("[SHUTDOWN] Graceful shutdown complete")
}
