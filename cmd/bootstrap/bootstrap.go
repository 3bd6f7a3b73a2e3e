package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-management-service/config"
	deliveryHttp "clinic-management-service/internal/delivery/http"
	"clinic-management-service/internal/delivery/http/handler"
	"clinic-management-service/internal/delivery/http/middleware"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/infrastructure/cache"
	"clinic-management-service/internal/infrastructure/database"
	"clinic-management-service/internal/repository"
	"clinic-management-service/internal/service"
	"clinic-management-service/internal/usecase"
	"clinic-management-service/pkg/jwt"
	"clinic-management-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.App.MigrationsPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Ensure the admin account exists
	if err := seedAdminUser(db, cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedAdminUser creates the initial admin account when it does not exist.
// Skipped entirely when no admin credentials are configured.
func seedAdminUser(db *gorm.DB, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		logrus.Warn("Admin credentials not configured, skipping admin seed")
		return nil
	}

	userRepo := repository.NewUserRepository()

	existing, err := userRepo.FindByEmail(db, cfg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	isActive := true
	admin := &entity.User{
		Email:    cfg.Email,
		Password: string(hashedPassword),
		FullName: "Administrator",
		RoleID:   entity.RoleIDAdmin,
		IsActive: &isActive,
	}

	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logrus.WithField("email", cfg.Email).Info("Admin user seeded")
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	invoiceRepo := repository.NewInvoiceRepository()
	donorRepo := repository.NewBloodDonorRepository()
	unitRepo := repository.NewBloodUnitRepository()
	issueRepo := repository.NewBloodIssueRepository()
	ambulanceRepo := repository.NewAmbulanceRepository()
	callRepo := repository.NewEmergencyCallRepository()
	staffRepo := repository.NewStaffRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	roomRepo := repository.NewRoomRepository()
	allotmentRepo := repository.NewRoomAllotmentRepository()
	serviceRepo := repository.NewServiceRepository()
	supplierRepo := repository.NewSupplierRepository()
	alertRepo := repository.NewInventoryAlertRepository()
	templateRepo := repository.NewPrescriptionTemplateRepository()
	activityLogRepo := repository.NewActivityLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	activityService := service.NewActivityService(log, activityLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient, activityService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, invoiceRepo, activityService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo, activityService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, activityService)
	invoiceUsecase := usecase.NewInvoiceUsecase(db, log, invoiceRepo, patientRepo, activityService)
	bloodBankUsecase := usecase.NewBloodBankUsecase(db, log, donorRepo, unitRepo, issueRepo, patientRepo, activityService)
	ambulanceUsecase := usecase.NewAmbulanceUsecase(db, log, ambulanceRepo, callRepo, activityService)
	staffUsecase := usecase.NewStaffUsecase(db, log, staffRepo, attendanceRepo, activityService)
	roomUsecase := usecase.NewRoomUsecase(db, log, roomRepo, allotmentRepo, patientRepo, activityService)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, activityService)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, supplierRepo, alertRepo, activityService)
	templateUsecase := usecase.NewPrescriptionTemplateUsecase(db, log, templateRepo, doctorRepo, activityService)
	activityLogUsecase := usecase.NewActivityLogUsecase(db, log, activityLogRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, doctorRepo, staffRepo, appointmentRepo, invoiceRepo, roomRepo, unitRepo, ambulanceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUsecase, customValidator)
	bloodBankHandler := handler.NewBloodBankHandler(bloodBankUsecase, customValidator)
	ambulanceHandler := handler.NewAmbulanceHandler(ambulanceUsecase, customValidator)
	staffHandler := handler.NewStaffHandler(staffUsecase, customValidator)
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	inventoryHandler := handler.NewInventoryHandler(inventoryUsecase, customValidator)
	templateHandler := handler.NewPrescriptionTemplateHandler(templateUsecase, customValidator)
	activityLogHandler := handler.NewActivityLogHandler(activityLogUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		invoiceHandler,
		bloodBankHandler,
		ambulanceHandler,
		staffHandler,
		roomHandler,
		serviceHandler,
		inventoryHandler,
		templateHandler,
		activityLogHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
