package dto

import "github.com/shopspring/decimal"

// Response DTOs

type DashboardStatsResponse struct {
	TotalPatients       int64                 `json:"total_patients"`
	TotalDoctors        int64                 `json:"total_doctors"`
	TotalStaff          int64                 `json:"total_staff"`
	TotalAppointments   int64                 `json:"total_appointments"`
	TodayAppointments   int64                 `json:"today_appointments"`
	TotalRevenue        decimal.Decimal       `json:"total_revenue"`
	PendingInvoices     int64                 `json:"pending_invoices"`
	AvailableRooms      int64                 `json:"available_rooms"`
	AvailableBloodUnits int64                 `json:"available_blood_units"`
	AvailableAmbulances int64                 `json:"available_ambulances"`
	RecentAppointments  []AppointmentResponse `json:"recent_appointments"`
}
