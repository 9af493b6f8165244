package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"promasterBack/internal/models"
	"promasterBack/internal/services"
)

type SavedCompanyHandler struct {
	Service *services.SavedCompanyService
}

func (h *SavedCompanyHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can save companies.", http.StatusForbidden)
		return
	}

	var payload struct {
		CompanyID int `json:"company_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.CompanyID == 0 {
		http.Error(w, "Missing required 'company_id' field", http.StatusBadRequest)
		return
	}

	entry, created, err := h.Service.SaveCompany(r.Context(), clientID, payload.CompanyID)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("SaveCompany error: %v", err)
		http.Error(w, "Failed to save company", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !created {
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Company already saved.",
			"saved":   entry,
		})
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

func (h *SavedCompanyHandler) ToggleSavedCompany(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can save companies.", http.StatusForbidden)
		return
	}

	idStr := r.URL.Query().Get(":company_id")
	companyID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	saved, err := h.Service.ToggleSavedCompany(r.Context(), clientID, companyID)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("ToggleSavedCompany error: %v", err)
		http.Error(w, "Failed to toggle saved company", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"saved": saved})
}

func (h *SavedCompanyHandler) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can save companies.", http.StatusForbidden)
		return
	}

	idStr := r.URL.Query().Get(":id")
	savedID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid saved entry ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveSaved(r.Context(), clientID, savedID); err != nil {
		switch {
		case errors.Is(err, models.ErrSavedNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Printf("RemoveSaved error: %v", err)
			http.Error(w, "Failed to remove saved company", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SavedCompanyHandler) GetSavedByClient(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can save companies.", http.StatusForbidden)
		return
	}

	idStr := r.URL.Query().Get(":client_id")
	requestedID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}
	if requestedID != clientID {
		http.Error(w, "You can only view your own saved companies.", http.StatusForbidden)
		return
	}

	saved, err := h.Service.GetSavedByClient(r.Context(), clientID)
	if err != nil {
		log.Printf("GetSavedByClient error: %v", err)
		http.Error(w, "Failed to get saved companies", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

func (h *SavedCompanyHandler) CheckSaved(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can save companies.", http.StatusForbidden)
		return
	}

	requestedID, err := strconv.Atoi(r.URL.Query().Get(":client_id"))
	if err != nil || requestedID != clientID {
		http.Error(w, "You can only check your own saved companies.", http.StatusForbidden)
		return
	}
	companyID, err := strconv.Atoi(r.URL.Query().Get(":company_id"))
	if err != nil {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	saved, err := h.Service.IsSaved(r.Context(), clientID, companyID)
	if err != nil {
		log.Printf("CheckSaved error: %v", err)
		http.Error(w, "Failed to check saved state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"saved": saved})
}
