package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/casaflow/property-service/internal/app"
	"github.com/casaflow/property-service/internal/config"
	"github.com/casaflow/property-service/internal/controllers"
	"github.com/casaflow/property-service/internal/middleware"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/notify"
	"github.com/casaflow/property-service/internal/repositories"
	"github.com/casaflow/property-service/internal/resilience"
	"github.com/casaflow/property-service/internal/routes"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize the application:", err)
	}
	defer application.Close()

	if cfg.LDFlag_SeedDemoData {
		application.SeedDemoData()
	}

	probe := application.StartAvailabilityProbe()
	defer probe.Stop()

	// Repositories
	propRepo := repositories.NewPropertyRepository(application)
	unitRepo := repositories.NewUnitRepository(application)
	tenantRepo := repositories.NewTenantRepository(application)
	maintRepo := repositories.NewMaintenanceRequestRepository(application)
	txRepo := repositories.NewTransactionRepository(application)

	// Shared plumbing
	policy := resilience.NewPolicy(cfg.ReadMaxRetries, cfg.ReadAttemptTimeout)
	notifier := notify.NewLogNotifier()
	analytics := notify.NewAnalytics(256)
	defer analytics.Close()
	emailSender := notify.NewEmailSender(cfg.SendgridAPIKey, cfg.SendgridFromEmail, "CasaFlow")

	// Services
	propService := services.NewPropertyService(propRepo, unitRepo, application.Fallback, policy, application.Availability, notifier, analytics)
	unitService := services.NewUnitService(unitRepo, application.Fallback, policy, application.Availability, notifier, analytics)
	tenantService := services.NewTenantService(tenantRepo, unitRepo, application.Fallback, policy, application.Availability, notifier, analytics)
	maintService := services.NewMaintenanceService(maintRepo, application.Fallback, policy, application.Availability, notifier, analytics, emailSender, cfg.OpsNotifyEmail)
	txService := services.NewTransactionService(txRepo, application.Fallback, policy, application.Availability, notifier, analytics)
	dashService := services.NewDashboardService(propService, unitService, maintService, txService)

	// Controllers
	healthController := controllers.NewHealthController(application.Availability)
	propController := controllers.NewPropertyController(propService)
	unitController := controllers.NewUnitController(unitService)
	tenantController := controllers.NewTenantController(tenantService)
	maintController := controllers.NewMaintenanceController(maintService)
	txController := controllers.NewTransactionController(txService)
	dashController := controllers.NewDashboardController(dashService)
	myController := controllers.NewMyController(tenantService, txService, maintService)

	// Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	// Landlord routes
	landlord := router.NewRoute().Subrouter()
	landlord.Use(middleware.AuthMiddleware(cfg.AuthPublicKey))
	landlord.Use(middleware.RequireRole(models.RoleLandlord))

	landlord.HandleFunc(routes.Properties, propController.ListHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.Properties, propController.CreateHandler).Methods(http.MethodPost)
	landlord.HandleFunc(routes.PropertyByID, propController.GetHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.PropertyByID, propController.UpdateHandler).Methods(http.MethodPatch)
	landlord.HandleFunc(routes.PropertyByID, propController.DeleteHandler).Methods(http.MethodDelete)
	landlord.HandleFunc(routes.PropertyUnits, unitController.ListByPropertyHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.PropertyTransactions, txController.ListByPropertyHandler).Methods(http.MethodGet)

	landlord.HandleFunc(routes.Units, unitController.CreateHandler).Methods(http.MethodPost)
	landlord.HandleFunc(routes.UnitByID, unitController.GetHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.UnitByID, unitController.UpdateHandler).Methods(http.MethodPatch)
	landlord.HandleFunc(routes.UnitByID, unitController.DeleteHandler).Methods(http.MethodDelete)
	landlord.HandleFunc(routes.UnitMaintenance, maintController.ListByUnitHandler).Methods(http.MethodGet)

	landlord.HandleFunc(routes.Tenants, tenantController.ListHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.Tenants, tenantController.CreateHandler).Methods(http.MethodPost)
	landlord.HandleFunc(routes.TenantByID, tenantController.GetHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.TenantByID, tenantController.UpdateHandler).Methods(http.MethodPatch)
	landlord.HandleFunc(routes.TenantByID, tenantController.DeleteHandler).Methods(http.MethodDelete)
	landlord.HandleFunc(routes.TenantAssign, tenantController.AssignHandler).Methods(http.MethodPost)
	landlord.HandleFunc(routes.TenantUnassign, tenantController.UnassignHandler).Methods(http.MethodPost)

	landlord.HandleFunc(routes.Maintenance, maintController.ListByStatusHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.Maintenance, maintController.CreateHandler).Methods(http.MethodPost)
	landlord.HandleFunc(routes.MaintenanceByID, maintController.GetHandler).Methods(http.MethodGet)
	landlord.HandleFunc(routes.MaintenanceByID, maintController.DeleteHandler).Methods(http.MethodDelete)
	landlord.HandleFunc(routes.MaintenanceStatus, maintController.UpdateStatusHandler).Methods(http.MethodPatch)

	landlord.HandleFunc(routes.Transactions, txController.CreateHandler).Methods(http.MethodPost)
	landlord.HandleFunc(routes.TransactionByID, txController.DeleteHandler).Methods(http.MethodDelete)
	landlord.HandleFunc(routes.DashboardSummary, dashController.SummaryHandler).Methods(http.MethodGet)

	// Tenant self-service routes
	tenant := router.NewRoute().Subrouter()
	tenant.Use(middleware.AuthMiddleware(cfg.AuthPublicKey))
	tenant.Use(middleware.RequireRole(models.RoleTenant))

	tenant.HandleFunc(routes.MyUnit, myController.UnitHandler).Methods(http.MethodGet)
	tenant.HandleFunc(routes.MyPayments, myController.PaymentsHandler).Methods(http.MethodGet)
	tenant.HandleFunc(routes.MyMaintenance, myController.MaintenanceHandler).Methods(http.MethodGet)

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}

	// CORS config
	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
