package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/config"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/database"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/geo"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/handler"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/repository"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log := logger.New(cfg.Server.LogLevel)
	log.Info("configuration loaded")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	prescriptionRepo := repository.NewPrescriptionRepo(db)
	healthRecordRepo := repository.NewHealthRecordRepo(db)
	leaveRepo := repository.NewLeaveRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Start the notification dispatcher in a background goroutine
	sender := notification.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Password)
	dispatcher := notification.NewDispatcher(sender, cfg.SMTP.QueueSize, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Run(ctx)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo, dispatcher, log)
	userService := service.NewUserService(userRepo, doctorRepo, auditRepo, log)
	hospitalService := service.NewHospitalService(hospitalRepo, auditRepo, geo.NewFilter(), log)
	doctorService := service.NewDoctorService(doctorRepo, hospitalRepo, auditRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, userRepo, dispatcher, log)
	prescriptionService := service.NewPrescriptionService(prescriptionRepo, appointmentRepo, dispatcher, log)
	healthRecordService := service.NewHealthRecordService(healthRecordRepo, appointmentRepo, log)
	leaveService := service.NewLeaveService(leaveRepo, doctorRepo, auditRepo, dispatcher, log)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS and metrics middleware
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Metrics())

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionService)
	healthRecordHandler := handler.NewHealthRecordHandler(healthRecordService)
	leaveHandler := handler.NewLeaveHandler(leaveService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hws-pfsd",
		})
	})

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Everything below requires a valid access token
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())
	{
		// Profile routes (own account)
		api.GET("/profile", userHandler.GetProfile)
		api.PUT("/profile", userHandler.UpdateProfile)

		// User routes
		api.GET("/users", userHandler.GetAllUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)

		// Audit log routes (admin)
		api.GET("/audit-logs", userHandler.GetAuditLogs)

		// Hospital routes
		api.GET("/hospitals", hospitalHandler.GetAllHospitals)
		api.GET("/hospitals/:id", hospitalHandler.GetHospital)
		api.POST("/hospitals", hospitalHandler.CreateHospital)
		api.PUT("/hospitals/:id", hospitalHandler.UpdateHospital)
		api.DELETE("/hospitals/:id", hospitalHandler.DeleteHospital)

		// Doctor routes
		api.GET("/doctors", doctorHandler.GetAllDoctors)
		api.GET("/doctors/:id", doctorHandler.GetDoctor)
		api.POST("/doctors", doctorHandler.CreateDoctor)
		api.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
		api.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)

		// Appointment routes
		api.GET("/appointments", appointmentHandler.GetAllAppointments)
		api.GET("/appointments/:id", appointmentHandler.GetAppointment)
		api.POST("/appointments", appointmentHandler.CreateAppointment)
		api.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
		api.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

		// Prescription routes
		api.GET("/prescriptions", prescriptionHandler.GetAllPrescriptions)
		api.GET("/prescriptions/:id", prescriptionHandler.GetPrescription)
		api.POST("/prescriptions", prescriptionHandler.CreatePrescription)
		api.PUT("/prescriptions/:id", prescriptionHandler.UpdatePrescription)
		api.DELETE("/prescriptions/:id", prescriptionHandler.DeletePrescription)

		// Health record routes
		api.GET("/health-records", healthRecordHandler.GetAllHealthRecords)
		api.GET("/health-records/:id", healthRecordHandler.GetHealthRecord)
		api.POST("/health-records", healthRecordHandler.CreateHealthRecord)
		api.PUT("/health-records/:id", healthRecordHandler.UpdateHealthRecord)
		api.DELETE("/health-records/:id", healthRecordHandler.DeleteHealthRecord)

		// Leave routes
		api.GET("/leaves", leaveHandler.GetAllLeaves)
		api.GET("/leaves/:id", leaveHandler.GetLeave)
		api.POST("/leaves", leaveHandler.CreateLeave)
		api.PUT("/leaves/:id", leaveHandler.TransitionLeave)
		api.DELETE("/leaves/:id", leaveHandler.DeleteLeave)
	}

	// 11. Setup graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	// Stop the notification dispatcher and drain in-flight requests
	cancel()
	if err := srv.Shutdown(context.Background()); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	log.Info("server exited")
}
