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

type RatingHandler struct {
	Service *services.RatingService
}

func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can rate companies.", http.StatusForbidden)
		return
	}

	companyID, err := strconv.Atoi(r.URL.Query().Get(":company_id"))
	if err != nil {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	var rating models.Rating
	if err := json.NewDecoder(r.Body).Decode(&rating); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rating.ClientID = clientID
	rating.CompanyID = companyID

	created, err := h.Service.CreateRating(r.Context(), rating)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRating):
			http.Error(w, "Rating must be between 1.0 and 5.0", http.StatusBadRequest)
		case errors.Is(err, models.ErrCompanyNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrAlreadyRated):
			http.Error(w, "You have already rated this company.", http.StatusConflict)
		default:
			log.Printf("CreateRating error: %v", err)
			http.Error(w, "Failed to create rating", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *RatingHandler) GetRatingsByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.Atoi(r.URL.Query().Get(":company_id"))
	if err != nil {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	page, perPage := parsePagination(r, defaultPerPage)

	resp, err := h.Service.GetRatingsByCompanyID(r.Context(), companyID, page, perPage)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("GetRatingsByCompany error: %v", err)
		http.Error(w, "Failed to get ratings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *RatingHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can rate companies.", http.StatusForbidden)
		return
	}

	ratingID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid rating ID", http.StatusBadRequest)
		return
	}

	var rating models.Rating
	if err := json.NewDecoder(r.Body).Decode(&rating); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rating.ID = ratingID

	if err := h.Service.UpdateRating(r.Context(), clientID, rating); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRating):
			http.Error(w, "Rating must be between 1.0 and 5.0", http.StatusBadRequest)
		case errors.Is(err, models.ErrRatingNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Printf("UpdateRating error: %v", err)
			http.Error(w, "Failed to update rating", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *RatingHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	clientID, role, ok := authUser(r)
	if !ok || role != "client" {
		http.Error(w, "Only clients can rate companies.", http.StatusForbidden)
		return
	}

	ratingID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid rating ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRating(r.Context(), clientID, ratingID); err != nil {
		if errors.Is(err, models.ErrRatingNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("DeleteRating error: %v", err)
		http.Error(w, "Failed to delete rating", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
