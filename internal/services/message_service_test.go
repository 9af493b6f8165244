package services

import (
	"errors"
	"testing"

	"promasterBack/internal/models"
)

func TestBuildMessageClientToCompany(t *testing.T) {
	msg, err := BuildMessage(7, "client", models.SendMessageRequest{
		Content:           "  Hello there  ",
		ReceiverCompanyID: 3,
	})
	if err != nil {
		t.Fatalf("BuildMessage returned error: %v", err)
	}

	if msg.Content != "Hello there" {
		t.Errorf("expected trimmed content, got %q", msg.Content)
	}
	if msg.SenderClientID == nil || *msg.SenderClientID != 7 {
		t.Errorf("unexpected sender client id: %v", msg.SenderClientID)
	}
	if msg.ReceiverCompanyID == nil || *msg.ReceiverCompanyID != 3 {
		t.Errorf("unexpected receiver company id: %v", msg.ReceiverCompanyID)
	}
	if msg.SenderCompanyID != nil || msg.ReceiverClientID != nil {
		t.Errorf("company-side ids must stay unset: %+v", msg)
	}
}

func TestBuildMessageCompanyToClient(t *testing.T) {
	msg, err := BuildMessage(4, "company", models.SendMessageRequest{
		Content:          "We can start Monday",
		ReceiverClientID: 9,
	})
	if err != nil {
		t.Fatalf("BuildMessage returned error: %v", err)
	}

	if msg.SenderCompanyID == nil || *msg.SenderCompanyID != 4 {
		t.Errorf("unexpected sender company id: %v", msg.SenderCompanyID)
	}
	if msg.ReceiverClientID == nil || *msg.ReceiverClientID != 9 {
		t.Errorf("unexpected receiver client id: %v", msg.ReceiverClientID)
	}
}

func TestBuildMessageRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		role string
		req  models.SendMessageRequest
		want error
	}{
		{"empty content", "client", models.SendMessageRequest{Content: "   ", ReceiverCompanyID: 1}, models.ErrEmptyMessage},
		{"client to client", "client", models.SendMessageRequest{Content: "hi", ReceiverClientID: 2}, models.ErrBadRecipient},
		{"client both receivers", "client", models.SendMessageRequest{Content: "hi", ReceiverClientID: 2, ReceiverCompanyID: 3}, models.ErrBadRecipient},
		{"client no receiver", "client", models.SendMessageRequest{Content: "hi"}, models.ErrBadRecipient},
		{"company to company", "company", models.SendMessageRequest{Content: "hi", ReceiverCompanyID: 2}, models.ErrBadRecipient},
		{"unknown role", "admin", models.SendMessageRequest{Content: "hi", ReceiverCompanyID: 2}, models.ErrBadRecipient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildMessage(1, tc.role, tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("BuildMessage error = %v, want %v", err, tc.want)
			}
		})
	}
}
