package api

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	httpHandlers "github.com/Abinash-k/Freelance-Portal/internal/api/http"
	"github.com/Abinash-k/Freelance-Portal/internal/api/recovery"
	"github.com/Abinash-k/Freelance-Portal/internal/services"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
	"github.com/Abinash-k/Freelance-Portal/internal/zoom"
)

// Deps are the constructed dependencies the router wires into handlers.
type Deps struct {
	Store   store.Store
	DB      httpHandlers.Pinger
	Issuer  zoom.CredentialIssuer
	Rooms   services.RoomCreator
	Invites services.InviteDispatcher
	Log     zerolog.Logger
}

// NewRouter creates the HTTP handler with all API routes. CORS wraps the
// router itself so preflight requests are answered before route matching.
func NewRouter(d Deps) nethttp.Handler {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	// Services
	meetingSvc := services.NewMeetingService(d.Store, d.Issuer, d.Rooms, d.Invites, d.Log)
	leadSvc := services.NewLeadService(d.Store)
	invoiceSvc := services.NewInvoiceService(d.Store)
	contractSvc := services.NewContractService(d.Store)
	expenseSvc := services.NewExpenseService(d.Store)
	projectSvc := services.NewProjectService(d.Store)
	businessSvc := services.NewBusinessService(d.Store)

	// Handlers
	healthHandler := httpHandlers.NewHealthHandler(d.DB)
	meetingHandler := httpHandlers.NewMeetingHandler(meetingSvc)
	leadHandler := httpHandlers.NewLeadHandler(leadSvc)
	invoiceHandler := httpHandlers.NewInvoiceHandler(invoiceSvc)
	contractHandler := httpHandlers.NewContractHandler(contractSvc)
	expenseHandler := httpHandlers.NewExpenseHandler(expenseSvc)
	projectHandler := httpHandlers.NewProjectHandler(projectSvc)
	businessHandler := httpHandlers.NewBusinessHandler(businessSvc)

	// Health endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/db", healthHandler.CheckStorageHealth).Methods("GET")

	// Meeting scheduling pipeline
	router.HandleFunc("/api/meetings/schedule", meetingHandler.ScheduleMeeting).Methods("POST")

	// Meeting read/update endpoints
	router.HandleFunc("/api/users/{userId}/meetings", meetingHandler.ListMeetings).Methods("GET")
	router.HandleFunc("/api/users/{userId}/meetings/{meetingId}", meetingHandler.GetMeeting).Methods("GET")
	router.HandleFunc("/api/users/{userId}/meetings/{meetingId}", meetingHandler.DeleteMeeting).Methods("DELETE")
	router.HandleFunc("/api/users/{userId}/meetings/{meetingId}/status", meetingHandler.UpdateMeetingStatus).Methods("PATCH")

	// Lead endpoints
	router.HandleFunc("/api/users/{userId}/leads", leadHandler.CreateLead).Methods("POST")
	router.HandleFunc("/api/users/{userId}/leads", leadHandler.ListLeads).Methods("GET")
	router.HandleFunc("/api/users/{userId}/leads/{leadId}", leadHandler.GetLead).Methods("GET")
	router.HandleFunc("/api/users/{userId}/leads/{leadId}", leadHandler.UpdateLead).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/leads/{leadId}", leadHandler.DeleteLead).Methods("DELETE")

	// Invoice endpoints
	router.HandleFunc("/api/users/{userId}/invoices", invoiceHandler.CreateInvoice).Methods("POST")
	router.HandleFunc("/api/users/{userId}/invoices", invoiceHandler.ListInvoices).Methods("GET")
	router.HandleFunc("/api/users/{userId}/invoices/{invoiceId}", invoiceHandler.GetInvoice).Methods("GET")
	router.HandleFunc("/api/users/{userId}/invoices/{invoiceId}", invoiceHandler.UpdateInvoice).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/invoices/{invoiceId}", invoiceHandler.DeleteInvoice).Methods("DELETE")

	// Contract endpoints
	router.HandleFunc("/api/users/{userId}/contracts", contractHandler.CreateContract).Methods("POST")
	router.HandleFunc("/api/users/{userId}/contracts", contractHandler.ListContracts).Methods("GET")
	router.HandleFunc("/api/users/{userId}/contracts/{contractId}", contractHandler.GetContract).Methods("GET")
	router.HandleFunc("/api/users/{userId}/contracts/{contractId}", contractHandler.UpdateContract).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/contracts/{contractId}", contractHandler.DeleteContract).Methods("DELETE")

	// Expense endpoints
	router.HandleFunc("/api/users/{userId}/expenses", expenseHandler.CreateExpense).Methods("POST")
	router.HandleFunc("/api/users/{userId}/expenses", expenseHandler.ListExpenses).Methods("GET")
	router.HandleFunc("/api/users/{userId}/expenses/{expenseId}", expenseHandler.GetExpense).Methods("GET")
	router.HandleFunc("/api/users/{userId}/expenses/{expenseId}", expenseHandler.UpdateExpense).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/expenses/{expenseId}", expenseHandler.DeleteExpense).Methods("DELETE")

	// Project endpoints
	router.HandleFunc("/api/users/{userId}/projects", projectHandler.CreateProject).Methods("POST")
	router.HandleFunc("/api/users/{userId}/projects", projectHandler.ListProjects).Methods("GET")
	router.HandleFunc("/api/users/{userId}/projects/{projectId}", projectHandler.UpdateProject).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/projects/{projectId}", projectHandler.DeleteProject).Methods("DELETE")

	// Business profile
	router.HandleFunc("/api/users/{userId}/business-details", businessHandler.GetDetails).Methods("GET")
	router.HandleFunc("/api/users/{userId}/business-details", businessHandler.SaveDetails).Methods("PUT")

	return CORS(router)
}
