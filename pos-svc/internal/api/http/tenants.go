package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"foodcourt-pos/pos-svc/internal/domain"

	"github.com/gorilla/mux"
)

const maxUploadSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) getTenants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog.Tenants())
}

func (h *Handler) getTenant(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.svc.Catalog.Tenant(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Tenant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *Handler) createTenant(w http.ResponseWriter, r *http.Request) {
	var in domain.TenantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		http.Error(w, "Tenant name is required", http.StatusBadRequest)
		return
	}
	tenant, err := h.svc.Catalog.AddTenant(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

func (h *Handler) updateTenant(w http.ResponseWriter, r *http.Request) {
	var patch domain.TenantPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		http.Error(w, "Tenant name is required", http.StatusBadRequest)
		return
	}
	tenant, err := h.svc.Catalog.UpdateTenant(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tenant == nil {
		http.Error(w, "Tenant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *Handler) deleteTenant(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Catalog.DeleteTenant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Tenant not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadTenantImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.svc.Catalog.Tenant(id); !ok {
		http.Error(w, "Tenant not found", http.StatusNotFound)
		return
	}
	imageURL, ok := h.saveUpload(w, r, "tenant_"+id)
	if !ok {
		return
	}
	tenant, err := h.svc.Catalog.UpdateTenant(r.Context(), id, domain.TenantPatch{Image: &imageURL})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tenant == nil {
		http.Error(w, "Tenant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) getTenantMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog.GetMenuByTenant(mux.Vars(r)["tenantId"]))
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var in domain.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in.TenantID = mux.Vars(r)["tenantId"]
	if !h.canEditMenu(r, in.TenantID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	item, err := h.svc.Catalog.AddMenuItem(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var patch domain.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	if !h.authorizeMenuItem(w, r, id) {
		return
	}
	item, err := h.svc.Catalog.UpdateMenuItem(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if item == nil {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.authorizeMenuItem(w, r, id) {
		return
	}
	rows, err := h.svc.Catalog.DeleteMenuItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.authorizeMenuItem(w, r, id) {
		return
	}
	imageURL, ok := h.saveUpload(w, r, "menu_"+id)
	if !ok {
		return
	}
	item, err := h.svc.Catalog.UpdateMenuItem(r.Context(), id, domain.MenuItemPatch{Image: &imageURL})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if item == nil {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

// canEditMenu reports whether the caller may change the menu of tenantID.
// Cashiers only manage the tenant they have selected.
func (h *Handler) canEditMenu(r *http.Request, tenantID string) bool {
	claims := claimsFrom(r.Context())
	if claims.Role == domain.RoleSuperAdmin {
		return true
	}
	selected := h.session(r).TenantID()
	return selected != "" && selected == tenantID
}

// authorizeMenuItem writes 404 for unknown items and 403 for items outside
// the caller's tenant.
func (h *Handler) authorizeMenuItem(w http.ResponseWriter, r *http.Request, id string) bool {
	item, ok := h.svc.Catalog.MenuItem(id)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return false
	}
	if !h.canEditMenu(r, item.TenantID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.DefaultCategories)
}

// saveUpload stores the multipart "image" field and returns its public URL.
// It writes the error response itself when ok is false.
func (h *Handler) saveUpload(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return "", false
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return "", false
	}

	uploadDir := h.uploadDir()
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return "", false
	}

	filename := prefix + "_" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		http.Error(w, "Failed to create file", http.StatusInternalServerError)
		return "", false
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return "", false
	}
	return "/uploads/" + filename, true
}

func (h *Handler) uploadDir() string {
	if h.svc.UploadDir == "" {
		return "./uploads"
	}
	return h.svc.UploadDir
}
