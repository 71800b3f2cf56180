package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"foodcourt-pos/pos-svc/internal/domain"
	"foodcourt-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

type selectTenantRequest struct {
	TenantID string `json:"tenantId"`
}

type addCartItemRequest struct {
	MenuItemID string `json:"menuItemId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

type checkoutResponse struct {
	Transaction *domain.Transaction `json:"transaction"`
	ReceiptQR   string              `json:"receiptQr"`
}

func (h *Handler) selectTenant(w http.ResponseWriter, r *http.Request) {
	var req selectTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess := h.session(r)
	tenant, err := h.svc.Carts.SelectTenant(sess, req.TenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tenant": tenant,
		"cart":   sess.Cart(),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session(r).Cart())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	sess.ClearCart()
	writeJSON(w, http.StatusOK, sess.Cart())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.svc.Carts.AddItem(h.session(r), req.MenuItemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess := h.session(r)
	sess.UpdateQuantity(mux.Vars(r)["id"], req.Quantity)
	writeJSON(w, http.StatusOK, sess.Cart())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	sess.RemoveItem(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, sess.Cart())
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	tx, err := h.svc.Checkout.Checkout(r.Context(), h.session(r), req.PaymentMethod)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, checkoutResponse{
		Transaction: tx,
		ReceiptQR:   service.ReceiptQRLink(tx.ID),
	})
}

func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	tenantID := service.ReportScope(claims.Role, h.session(r).TenantID())
	if claims.Role == domain.RoleSuperAdmin {
		tenantID = r.URL.Query().Get("tenant_id")
	}
	if tenantID == "" {
		writeJSON(w, http.StatusOK, h.svc.Ledger.List())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Ledger.ByTenant(tenantID))
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.svc.Ledger.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.svc.Ledger.Get(id); !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	qrCode, err := h.svc.QR.Generate(id)
	if err != nil {
		log.Printf("ERROR: Failed to generate QR code for transaction %s: %v", id, err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
