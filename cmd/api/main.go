package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gymadmin/internal/config"
	"gymadmin/internal/database"
	"gymadmin/internal/middleware"
	"gymadmin/internal/modules/assignment"
	"gymadmin/internal/modules/auth"
	"gymadmin/internal/modules/course"
	"gymadmin/internal/modules/dashboard"
	"gymadmin/internal/modules/equipment"
	"gymadmin/internal/modules/export"
	jwtsvc "gymadmin/internal/pkg/jwt"
	"gymadmin/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	courseRepo := repository.NewCourseRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokenRepo, j, cfg.RefreshTTL))
	courseHandler := course.NewHandler(course.NewService(courseRepo), cfg.ItemsPerPage)
	equipmentHandler := equipment.NewHandler(equipment.NewService(equipmentRepo), cfg.ItemsPerPage)
	assignmentHandler := assignment.NewHandler(assignment.NewService(assignmentRepo), cfg.ItemsPerPage)
	dashboardHandler := dashboard.NewHandler(
		dashboard.NewService(courseRepo, equipmentRepo, assignmentRepo, cfg.LowStockThreshold),
	)
	exportHandler := export.NewHandler(export.NewService(courseRepo, equipmentRepo))

	if cfg.IsProduction() && !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			courseHandler.RegisterRoutes(protected)
			equipmentHandler.RegisterRoutes(protected)
			assignmentHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			exportHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				courseHandler.RegisterAdminRoutes(admin)
				equipmentHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
