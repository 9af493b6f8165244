package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"promasterBack/internal/models"
	"promasterBack/internal/services"
)

type CompanyHandler struct {
	Service *services.CompanyService
}

func (h *CompanyHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if company.Name == "" || company.Email == "" || company.Password == "" || company.ServiceID == 0 {
		http.Error(w, "Missing required fields (name, email, password, service_id)", http.StatusBadRequest)
		return
	}

	created, err := h.Service.SignUp(r.Context(), company)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEmail):
			http.Error(w, "Company email already registered", http.StatusBadRequest)
		case errors.Is(err, models.ErrServiceNotFound):
			http.Error(w, "Invalid service selected", http.StatusBadRequest)
		default:
			log.Printf("company sign up error: %v", err)
			http.Error(w, "Failed to register company", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *CompanyHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tokens, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid email or password for company", http.StatusUnauthorized)
			return
		}
		log.Printf("company sign in error: %v", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokens)
}

func (h *CompanyHandler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	company, err := h.Service.GetCompanyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(company)
}

// GetCompanies backs the listings page: q, service_id, page, per_page.
func (h *CompanyHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, defaultListingsPerPage)
	serviceID, _ := strconv.Atoi(r.URL.Query().Get("service_id"))

	filter := models.CompanyFilterRequest{
		Query:     strings.TrimSpace(r.URL.Query().Get("q")),
		ServiceID: serviceID,
		Page:      page,
		PerPage:   perPage,
	}

	// unauthenticated viewers get saved=false everywhere
	viewerID := 0
	if id, role, ok := authUser(r); ok && role == "client" {
		viewerID = id
	}

	resp, err := h.Service.GetCompanies(r.Context(), filter, viewerID)
	if err != nil {
		log.Printf("GetCompanies error: %v", err)
		http.Error(w, "Failed to get companies", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *CompanyHandler) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, defaultPerPage)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	resp, err := h.Service.SearchCompanies(r.Context(), query, page, perPage)
	if err != nil {
		log.Printf("SearchCompanies error: %v", err)
		http.Error(w, "Failed to search companies", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req models.CompanyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateCompany(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPassword):
			http.Error(w, "Incorrect current password. All changes require current password confirmation.", http.StatusBadRequest)
		case errors.Is(err, models.ErrDuplicateEmail):
			http.Error(w, "Email already registered by another company", http.StatusBadRequest)
		case errors.Is(err, models.ErrServiceNotFound):
			http.Error(w, "Invalid service selected", http.StatusBadRequest)
		case errors.Is(err, models.ErrCompanyNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Printf("UpdateCompany error: %v", err)
			http.Error(w, "Failed to update company", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteCompany(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete company", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompanyHandler) UploadMainPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	data, fileName, contentType, ok := readImageUpload(w, r, "photo")
	if !ok {
		return
	}

	url, err := h.Service.SetMainPhoto(r.Context(), id, data, fileName, contentType)
	if err != nil {
		log.Printf("UploadMainPhoto error: %v", err)
		http.Error(w, "Failed to upload photo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"photo_url": url})
}

func (h *CompanyHandler) RemoveMainPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	if err := h.Service.RemoveMainPhoto(r.Context(), id); err != nil {
		log.Printf("RemoveMainPhoto error: %v", err)
		http.Error(w, "Failed to remove photo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *CompanyHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	data, fileName, contentType, ok := readImageUpload(w, r, "image")
	if !ok {
		return
	}

	gallery, err := h.Service.AddGalleryImage(r.Context(), id, data, fileName, contentType)
	if err != nil {
		log.Printf("AddGalleryImage error: %v", err)
		http.Error(w, "Failed to add gallery image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"gallery": gallery})
}

func (h *CompanyHandler) RemoveGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	var payload struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ImageURL == "" {
		http.Error(w, "Missing required 'image_url' field", http.StatusBadRequest)
		return
	}

	gallery, err := h.Service.RemoveGalleryImage(r.Context(), id, payload.ImageURL)
	if err != nil {
		log.Printf("RemoveGalleryImage error: %v", err)
		http.Error(w, "Failed to remove gallery image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"gallery": gallery})
}

// authorizeOwner resolves :id and checks the authenticated company owns
// the profile.
func (h *CompanyHandler) authorizeOwner(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return 0, false
	}

	authID, role, ok := authUser(r)
	if !ok || role != "company" || authID != id {
		http.Error(w, "You are not authorized to edit this company profile.", http.StatusForbidden)
		return 0, false
	}
	return id, true
}

func readImageUpload(w http.ResponseWriter, r *http.Request, field string) ([]byte, string, string, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return nil, "", "", false
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		http.Error(w, "Missing file", http.StatusBadRequest)
		return nil, "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return nil, "", "", false
	}

	ext := filepath.Ext(header.Filename)
	if !allowedImageExt(ext) {
		http.Error(w, "Invalid file type. Allowed types: png, jpg, jpeg, gif", http.StatusBadRequest)
		return nil, "", "", false
	}

	return data, uuid.New().String() + ext, contentTypeForExt(ext), true
}
