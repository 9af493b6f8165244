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

type MessageHandler struct {
	Service *services.MessageService
	// Notify pushes a stored message to the recipient's open socket,
	// if any. Nil when the socket hub is not wired.
	Notify func(role string, userID int, msg models.Message)
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, role, ok := authUser(r)
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.SendMessage(r.Context(), senderID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyMessage):
			http.Error(w, "Message content cannot be empty", http.StatusBadRequest)
		case errors.Is(err, models.ErrBadRecipient):
			http.Error(w, "Invalid recipient for your account type", http.StatusBadRequest)
		case errors.Is(err, models.ErrClientNotFound), errors.Is(err, models.ErrCompanyNotFound):
			http.Error(w, "Recipient not found", http.StatusNotFound)
		default:
			log.Printf("SendMessage error: %v", err)
			http.Error(w, "Failed to send message", http.StatusInternalServerError)
		}
		return
	}

	if h.Notify != nil {
		switch {
		case msg.ReceiverClientID != nil:
			h.Notify("client", *msg.ReceiverClientID, msg)
		case msg.ReceiverCompanyID != nil:
			h.Notify("company", *msg.ReceiverCompanyID, msg)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := authUser(r)
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	clientID, err := strconv.Atoi(r.URL.Query().Get(":client_id"))
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}
	companyID, err := strconv.Atoi(r.URL.Query().Get(":company_id"))
	if err != nil {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	// only the two participants may read the thread
	switch role {
	case "client":
		if userID != clientID {
			http.Error(w, "You are not a participant of this conversation.", http.StatusForbidden)
			return
		}
	case "company":
		if userID != companyID {
			http.Error(w, "You are not a participant of this conversation.", http.StatusForbidden)
			return
		}
	default:
		http.Error(w, "You are not a participant of this conversation.", http.StatusForbidden)
		return
	}

	page, perPage := parsePagination(r, defaultPerPage)

	resp, err := h.Service.GetConversation(r.Context(), clientID, companyID, page, perPage, role)
	if err != nil {
		log.Printf("GetConversation error: %v", err)
		http.Error(w, "Failed to get conversation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *MessageHandler) GetConversations(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := authUser(r)
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	conversations, err := h.Service.GetConversations(r.Context(), userID, role)
	if err != nil {
		log.Printf("GetConversations error: %v", err)
		http.Error(w, "Failed to get conversations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversations)
}
