package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"foodcourt-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

type Services struct {
	Catalog   *service.CatalogStore
	Carts     *service.CartService
	Sessions  *service.SessionRegistry
	Checkout  *service.CheckoutProcessor
	Ledger    *service.Ledger
	Reports   *service.ReportService
	Accounts  *service.AccountService
	Tokens    *service.TokenIssuer
	Dashboard *service.DashboardService
	QR        service.QRGenerator
	UploadDir string
}

type Handler struct {
	svc Services
}

func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/transactions/{id}/qrcode", h.getReceiptQRCode).Methods("GET")
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir()))))

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.authenticate)

	api.HandleFunc("/auth/logout", h.logout).Methods("POST")
	api.HandleFunc("/me", h.me).Methods("GET")

	api.HandleFunc("/admins", superAdminOnly(h.listAdmins)).Methods("GET")
	api.HandleFunc("/admins/pending", superAdminOnly(h.listPendingAdmins)).Methods("GET")
	api.HandleFunc("/admins/{id}/approve", superAdminOnly(h.approveAdmin)).Methods("POST")
	api.HandleFunc("/admins/{id}/reject", superAdminOnly(h.rejectAdmin)).Methods("POST")

	api.HandleFunc("/tenants", h.getTenants).Methods("GET")
	api.HandleFunc("/tenants", superAdminOnly(h.createTenant)).Methods("POST")
	api.HandleFunc("/tenants/{id}", h.getTenant).Methods("GET")
	api.HandleFunc("/tenants/{id}", superAdminOnly(h.updateTenant)).Methods("PUT")
	api.HandleFunc("/tenants/{id}", superAdminOnly(h.deleteTenant)).Methods("DELETE")
	api.HandleFunc("/tenants/{id}/image", superAdminOnly(h.uploadTenantImage)).Methods("POST")

	api.HandleFunc("/tenants/{tenantId}/menu", h.getTenantMenu).Methods("GET")
	api.HandleFunc("/tenants/{tenantId}/menu", h.createMenuItem).Methods("POST")
	api.HandleFunc("/menu/{id}", h.updateMenuItem).Methods("PUT")
	api.HandleFunc("/menu/{id}", h.deleteMenuItem).Methods("DELETE")
	api.HandleFunc("/menu/{id}/image", h.uploadMenuItemImage).Methods("POST")
	api.HandleFunc("/categories", h.getCategories).Methods("GET")

	api.HandleFunc("/session/tenant", h.selectTenant).Methods("POST")
	api.HandleFunc("/cart", h.getCart).Methods("GET")
	api.HandleFunc("/cart", h.clearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", h.addCartItem).Methods("POST")
	api.HandleFunc("/cart/items/{id}", h.updateCartItem).Methods("PUT")
	api.HandleFunc("/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	api.HandleFunc("/checkout", h.checkout).Methods("POST")

	api.HandleFunc("/transactions", h.getTransactions).Methods("GET")
	api.HandleFunc("/transactions/{id}", h.getTransaction).Methods("GET")
	api.HandleFunc("/reports", h.getReport).Methods("GET")
	api.HandleFunc("/reports/years", h.getReportYears).Methods("GET")
	api.HandleFunc("/dashboard", superAdminOnly(h.getDashboard)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}

// writeServiceError maps service sentinel errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrPersistence):
		status = http.StatusServiceUnavailable
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidMenuItem),
		errors.Is(err, service.ErrItemNotInTenant),
		errors.Is(err, service.ErrNoTenantSelected),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidReportQuery):
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: %v", err)
	}
	http.Error(w, err.Error(), status)
}
