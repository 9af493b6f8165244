package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"promasterBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, m models.Message) (models.Message, error) {
	query := `
		INSERT INTO messages (sender_client_id, sender_company_id, receiver_client_id, receiver_company_id, content, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, 0, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		m.SenderClientID, m.SenderCompanyID, m.ReceiverClientID, m.ReceiverCompanyID, m.Content,
	)
	if err != nil {
		return models.Message{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	m.ID = int(id)
	return r.GetMessageByID(ctx, m.ID)
}

func (r *MessageRepository) GetMessageByID(ctx context.Context, id int) (models.Message, error) {
	query := `
		SELECT id, sender_client_id, sender_company_id, receiver_client_id, receiver_company_id, content, is_read, created_at
		FROM messages
		WHERE id = ?
	`
	var m models.Message
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.SenderClientID, &m.SenderCompanyID, &m.ReceiverClientID, &m.ReceiverCompanyID,
		&m.Content, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return models.Message{}, err
	}
	return m, nil
}

// GetConversation returns the messages between one client and one
// company in chronological order, regardless of direction.
func (r *MessageRepository) GetConversation(ctx context.Context, clientID, companyID, page, pageSize int) ([]models.Message, int, error) {
	where := `
		WHERE (sender_client_id = ? AND receiver_company_id = ?)
		   OR (sender_company_id = ? AND receiver_client_id = ?)
	`
	var total int
	countQuery := `SELECT COUNT(*) FROM messages` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, clientID, companyID, companyID, clientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `
		SELECT id, sender_client_id, sender_company_id, receiver_client_id, receiver_company_id, content, is_read, created_at
		FROM messages
	` + where + `
		ORDER BY created_at ASC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, clientID, companyID, companyID, clientID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		err := rows.Scan(&m.ID, &m.SenderClientID, &m.SenderCompanyID, &m.ReceiverClientID, &m.ReceiverCompanyID,
			&m.Content, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("conversation rows error: %w", err)
	}
	return messages, total, nil
}

// MarkConversationRead flags messages addressed to one side of a
// conversation as read. role is "client" or "company".
func (r *MessageRepository) MarkConversationRead(ctx context.Context, clientID, companyID int, role string) error {
	var query string
	if role == "client" {
		query = `UPDATE messages SET is_read = 1 WHERE receiver_client_id = ? AND sender_company_id = ? AND is_read = 0`
		_, err := r.DB.ExecContext(ctx, query, clientID, companyID)
		return err
	}
	query = `UPDATE messages SET is_read = 1 WHERE receiver_company_id = ? AND sender_client_id = ? AND is_read = 0`
	_, err := r.DB.ExecContext(ctx, query, companyID, clientID)
	return err
}

// GetConversationsForClient returns the latest message per company this
// client has exchanged messages with, most recent conversation first.
func (r *MessageRepository) GetConversationsForClient(ctx context.Context, clientID int) ([]models.Conversation, error) {
	query := `
		SELECT m.id, m.sender_client_id, m.sender_company_id, m.receiver_client_id, m.receiver_company_id,
		       m.content, m.is_read, m.created_at,
		       c.id, c.name, c.photo_url,
		       (SELECT COUNT(*) FROM messages u
		          WHERE u.receiver_client_id = ? AND u.sender_company_id = c.id AND u.is_read = 0) AS unread
		FROM messages m
		JOIN companies c ON c.id = COALESCE(m.sender_company_id, m.receiver_company_id)
		JOIN (
			SELECT COALESCE(sender_company_id, receiver_company_id) AS company_id, MAX(created_at) AS last_at
			FROM messages
			WHERE sender_client_id = ? OR receiver_client_id = ?
			GROUP BY COALESCE(sender_company_id, receiver_company_id)
		) last ON last.company_id = c.id AND last.last_at = m.created_at
		WHERE m.sender_client_id = ? OR m.receiver_client_id = ?
		ORDER BY m.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, clientID, clientID, clientID, clientID, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversations(rows, clientID, "company")
}

// GetConversationsForCompany mirrors GetConversationsForClient for the
// company side.
func (r *MessageRepository) GetConversationsForCompany(ctx context.Context, companyID int) ([]models.Conversation, error) {
	query := `
		SELECT m.id, m.sender_client_id, m.sender_company_id, m.receiver_client_id, m.receiver_company_id,
		       m.content, m.is_read, m.created_at,
		       cl.id, cl.name, cl.avatar_path,
		       (SELECT COUNT(*) FROM messages u
		          WHERE u.receiver_company_id = ? AND u.sender_client_id = cl.id AND u.is_read = 0) AS unread
		FROM messages m
		JOIN clients cl ON cl.id = COALESCE(m.sender_client_id, m.receiver_client_id)
		JOIN (
			SELECT COALESCE(sender_client_id, receiver_client_id) AS client_id, MAX(created_at) AS last_at
			FROM messages
			WHERE sender_company_id = ? OR receiver_company_id = ?
			GROUP BY COALESCE(sender_client_id, receiver_client_id)
		) last ON last.client_id = cl.id AND last.last_at = m.created_at
		WHERE m.sender_company_id = ? OR m.receiver_company_id = ?
		ORDER BY m.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, companyID, companyID, companyID, companyID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversations(rows, companyID, "client")
}

func scanConversations(rows *sql.Rows, ownID int, counterpartType string) ([]models.Conversation, error) {
	conversations := []models.Conversation{}
	for rows.Next() {
		var (
			conv          models.Conversation
			m             models.Message
			counterpartID int
			photo         sql.NullString
		)
		err := rows.Scan(&m.ID, &m.SenderClientID, &m.SenderCompanyID, &m.ReceiverClientID, &m.ReceiverCompanyID,
			&m.Content, &m.IsRead, &m.CreatedAt,
			&counterpartID, &conv.CounterpartName, &photo, &conv.UnreadCount)
		if err != nil {
			return nil, err
		}
		if photo.Valid {
			conv.CounterpartPhoto = &photo.String
		}
		conv.CounterpartType = counterpartType
		if counterpartType == "company" {
			conv.ClientID = ownID
			conv.CompanyID = counterpartID
		} else {
			conv.ClientID = counterpartID
			conv.CompanyID = ownID
		}
		conv.LastMessage = m
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("conversations rows error: %w", err)
	}
	return conversations, nil
}
