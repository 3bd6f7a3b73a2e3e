package http

import (
	"net/http"

	"clinic-management-service/internal/delivery/http/handler"
	"clinic-management-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                      *mux.Router
	authHandler                 *handler.AuthHandler
	patientHandler              *handler.PatientHandler
	doctorHandler               *handler.DoctorHandler
	appointmentHandler          *handler.AppointmentHandler
	invoiceHandler              *handler.InvoiceHandler
	bloodBankHandler            *handler.BloodBankHandler
	ambulanceHandler            *handler.AmbulanceHandler
	staffHandler                *handler.StaffHandler
	roomHandler                 *handler.RoomHandler
	serviceHandler              *handler.ServiceHandler
	inventoryHandler            *handler.InventoryHandler
	prescriptionTemplateHandler *handler.PrescriptionTemplateHandler
	activityLogHandler          *handler.ActivityLogHandler
	dashboardHandler            *handler.DashboardHandler
	authMiddleware              *middleware.AuthMiddleware
	corsMiddleware              *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	invoiceHandler *handler.InvoiceHandler,
	bloodBankHandler *handler.BloodBankHandler,
	ambulanceHandler *handler.AmbulanceHandler,
	staffHandler *handler.StaffHandler,
	roomHandler *handler.RoomHandler,
	serviceHandler *handler.ServiceHandler,
	inventoryHandler *handler.InventoryHandler,
	prescriptionTemplateHandler *handler.PrescriptionTemplateHandler,
	activityLogHandler *handler.ActivityLogHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                      mux.NewRouter(),
		authHandler:                 authHandler,
		patientHandler:              patientHandler,
		doctorHandler:               doctorHandler,
		appointmentHandler:          appointmentHandler,
		invoiceHandler:              invoiceHandler,
		bloodBankHandler:            bloodBankHandler,
		ambulanceHandler:            ambulanceHandler,
		staffHandler:                staffHandler,
		roomHandler:                 roomHandler,
		serviceHandler:              serviceHandler,
		inventoryHandler:            inventoryHandler,
		prescriptionTemplateHandler: prescriptionTemplateHandler,
		activityLogHandler:          activityLogHandler,
		dashboardHandler:            dashboardHandler,
		authMiddleware:              authMiddleware,
		corsMiddleware:              corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management (admin only)
	admin := api.PathPrefix("/auth").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/register", r.authHandler.RegisterUser).Methods(http.MethodPost)

	// All other routes require an authenticated back-office user
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(middleware.RequireAdminOrStaff)

	protected.HandleFunc("/roles", r.authHandler.ListRoles).Methods(http.MethodGet)
	protected.HandleFunc("/roles/{id}", r.authHandler.GetRole).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors
	protected.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Invoices
	protected.HandleFunc("/invoices", r.invoiceHandler.CreateInvoice).Methods(http.MethodPost)
	protected.HandleFunc("/invoices", r.invoiceHandler.ListInvoices).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id}", r.invoiceHandler.GetInvoice).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id}", r.invoiceHandler.UpdateInvoice).Methods(http.MethodPut)
	protected.HandleFunc("/invoices/{id}", r.invoiceHandler.DeleteInvoice).Methods(http.MethodDelete)

	// Blood bank
	protected.HandleFunc("/blood-bank/donors", r.bloodBankHandler.CreateDonor).Methods(http.MethodPost)
	protected.HandleFunc("/blood-bank/donors", r.bloodBankHandler.ListDonors).Methods(http.MethodGet)
	protected.HandleFunc("/blood-bank/donors/{id}", r.bloodBankHandler.GetDonor).Methods(http.MethodGet)
	protected.HandleFunc("/blood-bank/donors/{id}", r.bloodBankHandler.UpdateDonor).Methods(http.MethodPut)
	protected.HandleFunc("/blood-bank/donors/{id}", r.bloodBankHandler.DeleteDonor).Methods(http.MethodDelete)
	protected.HandleFunc("/blood-bank/units", r.bloodBankHandler.CreateUnit).Methods(http.MethodPost)
	protected.HandleFunc("/blood-bank/units", r.bloodBankHandler.ListUnits).Methods(http.MethodGet)
	protected.HandleFunc("/blood-bank/units/{id}", r.bloodBankHandler.GetUnit).Methods(http.MethodGet)
	protected.HandleFunc("/blood-bank/units/{id}", r.bloodBankHandler.UpdateUnit).Methods(http.MethodPut)
	protected.HandleFunc("/blood-bank/units/{id}", r.bloodBankHandler.DeleteUnit).Methods(http.MethodDelete)
	protected.HandleFunc("/blood-bank/blood-stock", r.bloodBankHandler.GetStock).Methods(http.MethodGet)
	protected.HandleFunc("/blood-bank/blood-stock/by-type/{bloodType}", r.bloodBankHandler.GetStockByType).Methods(http.MethodGet)
	protected.HandleFunc("/blood-bank/issues", r.bloodBankHandler.IssueUnit).Methods(http.MethodPost)
	protected.HandleFunc("/blood-bank/issues", r.bloodBankHandler.ListIssues).Methods(http.MethodGet)

	// Ambulances
	protected.HandleFunc("/ambulances", r.ambulanceHandler.CreateAmbulance).Methods(http.MethodPost)
	protected.HandleFunc("/ambulances", r.ambulanceHandler.ListAmbulances).Methods(http.MethodGet)
	protected.HandleFunc("/ambulances/{id}", r.ambulanceHandler.GetAmbulance).Methods(http.MethodGet)
	protected.HandleFunc("/ambulances/{id}", r.ambulanceHandler.UpdateAmbulance).Methods(http.MethodPut)
	protected.HandleFunc("/ambulances/{id}", r.ambulanceHandler.DeleteAmbulance).Methods(http.MethodDelete)
	protected.HandleFunc("/emergency-calls", r.ambulanceHandler.CreateEmergencyCall).Methods(http.MethodPost)
	protected.HandleFunc("/emergency-calls", r.ambulanceHandler.ListEmergencyCalls).Methods(http.MethodGet)
	protected.HandleFunc("/emergency-calls/{id}", r.ambulanceHandler.GetEmergencyCall).Methods(http.MethodGet)
	protected.HandleFunc("/emergency-calls/{id}", r.ambulanceHandler.UpdateEmergencyCall).Methods(http.MethodPut)
	protected.HandleFunc("/emergency-calls/{id}", r.ambulanceHandler.DeleteEmergencyCall).Methods(http.MethodDelete)

	// Staff
	protected.HandleFunc("/staff", r.staffHandler.CreateStaff).Methods(http.MethodPost)
	protected.HandleFunc("/staff", r.staffHandler.ListStaff).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id}", r.staffHandler.GetStaff).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id}", r.staffHandler.UpdateStaff).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{id}", r.staffHandler.DeleteStaff).Methods(http.MethodDelete)

	// Attendance
	protected.HandleFunc("/attendance", r.staffHandler.CreateAttendance).Methods(http.MethodPost)
	protected.HandleFunc("/attendance", r.staffHandler.ListAttendance).Methods(http.MethodGet)
	protected.HandleFunc("/attendance/{id}", r.staffHandler.GetAttendance).Methods(http.MethodGet)
	protected.HandleFunc("/attendance/{id}", r.staffHandler.UpdateAttendance).Methods(http.MethodPut)
	protected.HandleFunc("/attendance/{id}", r.staffHandler.DeleteAttendance).Methods(http.MethodDelete)

	// Rooms
	protected.HandleFunc("/rooms", r.roomHandler.CreateRoom).Methods(http.MethodPost)
	protected.HandleFunc("/rooms", r.roomHandler.ListRooms).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{id}", r.roomHandler.GetRoom).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{id}", r.roomHandler.UpdateRoom).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{id}", r.roomHandler.DeleteRoom).Methods(http.MethodDelete)

	// Room allotments
	protected.HandleFunc("/room-allotments", r.roomHandler.CreateAllotment).Methods(http.MethodPost)
	protected.HandleFunc("/room-allotments", r.roomHandler.ListAllotments).Methods(http.MethodGet)
	protected.HandleFunc("/room-allotments/{id}", r.roomHandler.GetAllotment).Methods(http.MethodGet)
	protected.HandleFunc("/room-allotments/{id}", r.roomHandler.UpdateAllotment).Methods(http.MethodPut)
	protected.HandleFunc("/room-allotments/{id}", r.roomHandler.DeleteAllotment).Methods(http.MethodDelete)

	// Services
	protected.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	protected.HandleFunc("/services", r.serviceHandler.ListServices).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// Suppliers
	protected.HandleFunc("/suppliers", r.inventoryHandler.CreateSupplier).Methods(http.MethodPost)
	protected.HandleFunc("/suppliers", r.inventoryHandler.ListSuppliers).Methods(http.MethodGet)
	protected.HandleFunc("/suppliers/{id}", r.inventoryHandler.GetSupplier).Methods(http.MethodGet)
	protected.HandleFunc("/suppliers/{id}", r.inventoryHandler.UpdateSupplier).Methods(http.MethodPut)
	protected.HandleFunc("/suppliers/{id}", r.inventoryHandler.DeleteSupplier).Methods(http.MethodDelete)

	// Inventory alerts
	protected.HandleFunc("/inventory/alerts", r.inventoryHandler.CreateAlert).Methods(http.MethodPost)
	protected.HandleFunc("/inventory/alerts", r.inventoryHandler.ListAlerts).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/alerts/{id}", r.inventoryHandler.GetAlert).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/alerts/{id}", r.inventoryHandler.UpdateAlert).Methods(http.MethodPut)
	protected.HandleFunc("/inventory/alerts/{id}", r.inventoryHandler.DeleteAlert).Methods(http.MethodDelete)

	// Prescription templates
	protected.HandleFunc("/prescription-templates", r.prescriptionTemplateHandler.CreateTemplate).Methods(http.MethodPost)
	protected.HandleFunc("/prescription-templates", r.prescriptionTemplateHandler.ListTemplates).Methods(http.MethodGet)
	protected.HandleFunc("/prescription-templates/{id}", r.prescriptionTemplateHandler.GetTemplate).Methods(http.MethodGet)
	protected.HandleFunc("/prescription-templates/{id}", r.prescriptionTemplateHandler.UpdateTemplate).Methods(http.MethodPut)
	protected.HandleFunc("/prescription-templates/{id}", r.prescriptionTemplateHandler.DeleteTemplate).Methods(http.MethodDelete)

	// Activity logs
	protected.HandleFunc("/activity-logs", r.activityLogHandler.ListActivityLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
