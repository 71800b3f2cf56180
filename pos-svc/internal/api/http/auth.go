package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"foodcourt-pos/pos-svc/internal/domain"

	"github.com/gorilla/mux"
)

type loginRequest struct {
	domain.Credentials
	Role domain.Role `json:"role"`
}

type registerRequest struct {
	domain.Registration
	Role domain.Role `json:"role"`
}

type authResponse struct {
	domain.AuthResult
	Token string `json:"token,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	res := h.svc.Accounts.Login(req.Credentials, req.Role)
	if !res.Success {
		writeJSON(w, http.StatusUnauthorized, authResponse{AuthResult: res})
		return
	}

	token, err := h.svc.Tokens.Issue(*res.User)
	if err != nil {
		log.Printf("ERROR: Failed to issue token: %v", err)
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{AuthResult: res, Token: token})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Cashiers sign up and wait for approval. Only an existing super admin
	// may create another one.
	if req.Role == domain.RoleSuperAdmin && !h.isSuperAdminRequest(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	res, err := h.svc.Accounts.Register(r.Context(), req.Registration, req.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !res.Success {
		writeJSON(w, http.StatusBadRequest, authResponse{AuthResult: res})
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{AuthResult: res})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Sessions.Drop(claimsFrom(r.Context()).Subject)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	sess := h.session(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":               claims.Subject,
		"role":             claims.Role,
		"selectedTenantId": sess.TenantID(),
	})
}

func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Accounts.All())
}

func (h *Handler) listPendingAdmins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Accounts.Pending())
}

func (h *Handler) approveAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Accounts.Approve(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rejectAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Accounts.Reject(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
