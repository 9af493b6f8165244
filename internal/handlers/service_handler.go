package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"promasterBack/internal/models"
	"promasterBack/internal/services"
)

type ServiceHandler struct {
	Service        *services.ServiceService
	CompanyService *services.CompanyService
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	service.Name = strings.TrimSpace(service.Name)
	if service.Name == "" {
		http.Error(w, "Service name is required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateService(r.Context(), service)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateService) {
			http.Error(w, "Service already exists", http.StatusBadRequest)
			return
		}
		log.Printf("CreateService error: %v", err)
		http.Error(w, "Failed to create service", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ServiceHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}

	service, err := h.Service.GetServiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(service)
}

func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, defaultPerPage)

	resp, err := h.Service.GetServices(r.Context(), page, perPage)
	if err != nil {
		log.Printf("GetServices error: %v", err)
		http.Error(w, "Failed to get services", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}

	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	service.ID = id
	service.Name = strings.TrimSpace(service.Name)
	if service.Name == "" {
		http.Error(w, "Service name is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateService(r.Context(), service); err != nil {
		switch {
		case errors.Is(err, models.ErrServiceNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrDuplicateService):
			http.Error(w, "Service already exists", http.StatusBadRequest)
		default:
			log.Printf("UpdateService error: %v", err)
			http.Error(w, "Failed to update service", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(service)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("DeleteService error: %v", err)
		http.Error(w, "Failed to delete service", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCompaniesByService lists companies offering a given service,
// paginated the same way as the listings page.
func (h *ServiceHandler) GetCompaniesByService(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":service_id")
	serviceID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}

	if _, err := h.Service.GetServiceByID(r.Context(), serviceID); err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page, perPage := parsePagination(r, defaultListingsPerPage)

	viewerID := 0
	if id, role, ok := authUser(r); ok && role == "client" {
		viewerID = id
	}

	filter := models.CompanyFilterRequest{
		ServiceID: serviceID,
		Page:      page,
		PerPage:   perPage,
	}
	resp, err := h.CompanyService.GetCompanies(r.Context(), filter, viewerID)
	if err != nil {
		log.Printf("GetCompaniesByService error: %v", err)
		http.Error(w, "Failed to get companies", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
