package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"promasterBack/internal/models"
	"promasterBack/internal/services"
	"promasterBack/utils"
)

type ClientHandler struct {
	Service *services.ClientService
	Storage *utils.Storage
}

func (h *ClientHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if client.Name == "" || client.Email == "" || client.Password == "" {
		http.Error(w, "Missing required fields (name, email, password)", http.StatusBadRequest)
		return
	}

	created, err := h.Service.SignUp(r.Context(), client)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			http.Error(w, "Email already registered", http.StatusBadRequest)
			return
		}
		log.Printf("client sign up error: %v", err)
		http.Error(w, "Failed to register client", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ClientHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tokens, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		log.Printf("client sign in error: %v", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokens)
}

func (h *ClientHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	refreshToken := r.Header.Get("Refresh-Token")
	if refreshToken == "" {
		http.Error(w, "Refresh token missing", http.StatusBadRequest)
		return
	}
	if err := h.Service.LogOut(r.Context(), refreshToken); err != nil {
		log.Printf("client log out error: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ClientHandler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}

	authID, role, ok := authUser(r)
	if !ok || role != "client" || authID != id {
		http.Error(w, "You are not authorized to view this client's details.", http.StatusForbidden)
		return
	}

	client, err := h.Service.GetClientByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrClientNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(client)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}

	authID, role, ok := authUser(r)
	if !ok || role != "client" || authID != id {
		http.Error(w, "You are not authorized to update this client's details.", http.StatusForbidden)
		return
	}

	var payload struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if payload.NewPassword != "" {
		err := h.Service.UpdatePassword(r.Context(), id, payload.CurrentPassword, payload.NewPassword)
		if err != nil {
			if errors.Is(err, models.ErrInvalidPassword) {
				http.Error(w, "Incorrect current password", http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	client := models.Client{ID: id, Name: payload.Name, Email: payload.Email}
	updated, err := h.Service.UpdateClient(r.Context(), client)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			http.Error(w, "Email already in use", http.StatusBadRequest)
			return
		}
		if errors.Is(err, models.ErrClientNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}

	authID, role, ok := authUser(r)
	if !ok || role != "client" || authID != id {
		http.Error(w, "You are not authorized to delete this client account.", http.StatusForbidden)
		return
	}

	if err := h.Service.DeleteClient(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrClientNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("client delete error: %v", err)
		http.Error(w, "Failed to delete client", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}

	authID, role, ok := authUser(r)
	if !ok || role != "client" || authID != id {
		http.Error(w, "You are not authorized to update this client's details.", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "Missing avatar file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read avatar file", http.StatusInternalServerError)
		return
	}

	ext := filepath.Ext(header.Filename)
	if !allowedImageExt(ext) {
		http.Error(w, "Invalid file type. Allowed types: png, jpg, jpeg, gif", http.StatusBadRequest)
		return
	}

	fileName := uuid.New().String() + ext
	url, err := h.Storage.UploadFile(data, fileName, "clients", contentTypeForExt(ext))
	if err != nil {
		log.Printf("avatar upload error: %v", err)
		http.Error(w, "Failed to upload avatar", http.StatusInternalServerError)
		return
	}

	if err := h.Service.UpdateAvatar(r.Context(), id, url); err != nil {
		http.Error(w, "Failed to save avatar", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"avatar_path": url})
}
