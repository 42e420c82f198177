package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"railticket/internal/config"
	"railticket/internal/database"
	"railticket/internal/domain"
	"railticket/internal/events"
	"railticket/internal/middleware"
	"railticket/internal/modules/auth"
	"railticket/internal/modules/beneficiary"
	"railticket/internal/modules/catalog"
	"railticket/internal/modules/order"
	"railticket/internal/modules/passenger"
	"railticket/internal/modules/points"
	"railticket/internal/modules/standby"
	jwtsvc "railticket/internal/pkg/jwt"
	"railticket/internal/repository"
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

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.ResetCode{},
		&domain.QrSession{},
		&domain.Order{},
		&domain.StandbyRequest{},
		&domain.Passenger{},
		&domain.Beneficiary{},
		&points.Wallet{},
		&points.Transaction{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	authCodeRepo := repository.NewAuthCodeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	standbyRepo := repository.NewStandbyRepository(db)
	passengerRepo := repository.NewPassengerRepository(db)
	beneficiaryRepo := repository.NewBeneficiaryRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	hub := events.NewHub()
	eventsHandler := events.NewHandler(hub)

	catalogService := catalog.NewGenerated()
	catalogHandler := catalog.NewHandler(catalogService)

	passengerService := passenger.NewService(passengerRepo)
	passengerHandler := passenger.NewHandler(passengerService)

	beneficiaryService := beneficiary.NewService(beneficiaryRepo, passengerRepo)
	beneficiaryHandler := beneficiary.NewHandler(beneficiaryService)

	authService := auth.NewService(
		userRepo, sessionRepo, authCodeRepo, hub, j,
		cfg.ResetCodeTTL, cfg.QrSessionTTL,
		passengerService, beneficiaryService,
	)
	authHandler := auth.NewHandler(authService)

	pointsService := points.NewService(db)
	pointsHandler := points.NewHandler(pointsService)

	orderService := order.NewService(orderRepo, catalogService, hub, cfg.RefundDelay)
	defer orderService.Shutdown()
	orderHandler := order.NewHandler(orderService, pointsService)

	standbyService := standby.NewService(standbyRepo, hub)
	standbyHandler := standby.NewHandler(standbyService)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			orderHandler.RegisterRoutes(protected)
			standbyHandler.RegisterRoutes(protected)
			passengerHandler.RegisterRoutes(protected)
			beneficiaryHandler.RegisterRoutes(protected)
			pointsHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
