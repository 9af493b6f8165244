package services

import (
	"context"
	"strings"

	"promasterBack/internal/models"
	"promasterBack/internal/repositories"
)

type MessageService struct {
	MessageRepo *repositories.MessageRepository
	ClientRepo  *repositories.ClientRepository
	CompanyRepo *repositories.CompanyRepository
}

// BuildMessage derives the sender from the authenticated user and
// enforces the direction rule: clients write to companies, companies
// write to clients.
func BuildMessage(senderID int, senderRole string, req models.SendMessageRequest) (models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.Message{}, models.ErrEmptyMessage
	}

	var m models.Message
	m.Content = content

	switch senderRole {
	case "client":
		if req.ReceiverCompanyID == 0 || req.ReceiverClientID != 0 {
			return models.Message{}, models.ErrBadRecipient
		}
		sender := senderID
		receiver := req.ReceiverCompanyID
		m.SenderClientID = &sender
		m.ReceiverCompanyID = &receiver
	case "company":
		if req.ReceiverClientID == 0 || req.ReceiverCompanyID != 0 {
			return models.Message{}, models.ErrBadRecipient
		}
		sender := senderID
		receiver := req.ReceiverClientID
		m.SenderCompanyID = &sender
		m.ReceiverClientID = &receiver
	default:
		return models.Message{}, models.ErrBadRecipient
	}
	return m, nil
}

func (s *MessageService) SendMessage(ctx context.Context, senderID int, senderRole string, req models.SendMessageRequest) (models.Message, error) {
	m, err := BuildMessage(senderID, senderRole, req)
	if err != nil {
		return models.Message{}, err
	}

	if m.ReceiverCompanyID != nil {
		exists, err := s.CompanyRepo.CompanyExists(ctx, *m.ReceiverCompanyID)
		if err != nil {
			return models.Message{}, err
		}
		if !exists {
			return models.Message{}, models.ErrCompanyNotFound
		}
	}
	if m.ReceiverClientID != nil {
		if _, err := s.ClientRepo.GetClientByID(ctx, *m.ReceiverClientID); err != nil {
			return models.Message{}, err
		}
	}

	return s.MessageRepo.CreateMessage(ctx, m)
}

// GetConversation returns the messages between a client and a company
// and marks those addressed to the requester as read.
func (s *MessageService) GetConversation(ctx context.Context, clientID, companyID, page, perPage int, requesterRole string) (models.MessageListResponse, error) {
	messages, total, err := s.MessageRepo.GetConversation(ctx, clientID, companyID, page, perPage)
	if err != nil {
		return models.MessageListResponse{}, err
	}

	if err := s.MessageRepo.MarkConversationRead(ctx, clientID, companyID, requesterRole); err != nil {
		return models.MessageListResponse{}, err
	}

	return models.MessageListResponse{
		Messages:   messages,
		Pagination: models.NewPagination(total, page, perPage),
	}, nil
}

func (s *MessageService) GetConversations(ctx context.Context, userID int, role string) ([]models.Conversation, error) {
	if role == "company" {
		return s.MessageRepo.GetConversationsForCompany(ctx, userID)
	}
	return s.MessageRepo.GetConversationsForClient(ctx, userID)
}
