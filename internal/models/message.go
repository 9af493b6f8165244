package models

import "time"

// Message travels between a client and a company, one side sender and
// the other receiver. Exactly one sender id and the opposite receiver
// id are set.
type Message struct {
	ID                int       `json:"id"`
	SenderClientID    *int      `json:"sender_client_id,omitempty"`
	SenderCompanyID   *int      `json:"sender_company_id,omitempty"`
	ReceiverClientID  *int      `json:"receiver_client_id,omitempty"`
	ReceiverCompanyID *int      `json:"receiver_company_id,omitempty"`
	Content           string    `json:"content"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	Content           string `json:"content"`
	ReceiverClientID  int    `json:"receiver_client_id,omitempty"`
	ReceiverCompanyID int    `json:"receiver_company_id,omitempty"`
}

// Conversation is one row of the chat list: the counterpart and the
// most recent message exchanged with them.
type Conversation struct {
	ClientID         int     `json:"client_id"`
	CompanyID        int     `json:"company_id"`
	CounterpartName  string  `json:"counterpart_name"`
	CounterpartType  string  `json:"counterpart_type"`
	CounterpartPhoto *string `json:"counterpart_photo,omitempty"`
	LastMessage      Message `json:"last_message"`
	UnreadCount      int     `json:"unread_count"`
}

type MessageListResponse struct {
	Messages   []Message  `json:"messages"`
	Pagination Pagination `json:"pagination"`
}
