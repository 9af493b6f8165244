package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"promasterBack/internal/models"
	"promasterBack/internal/repositories"
	"promasterBack/utils"
)

const (
	tokenTTL   = 120 * time.Minute
	sessionTTL = 24 * 30 * 2 * time.Hour
)

type ClientService struct {
	ClientRepo   *repositories.ClientRepository
	Sessions     *repositories.SessionStore
	TokenManager *utils.Manager
	SigningKey   string
}

func (s *ClientService) SignUp(ctx context.Context, client models.Client) (models.Client, error) {
	existing, err := s.ClientRepo.GetClientByEmail(ctx, client.Email)
	if err != nil {
		return models.Client{}, err
	}
	if existing.Email != "" {
		return models.Client{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(client.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Client{}, err
	}
	client.Password = string(hashedPassword)

	created, err := s.ClientRepo.CreateClient(ctx, client)
	if err != nil {
		return models.Client{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *ClientService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	client, err := s.ClientRepo.GetClientByEmail(ctx, email)
	if err != nil {
		return models.Tokens{}, err
	}
	if client.Email == "" {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for client: %s", email)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := signAccessToken(client.ID, "client", s.SigningKey)
	if err != nil {
		return models.Tokens{}, err
	}

	return s.createSession(ctx, client.ID, "client", accessToken)
}

func signAccessToken(userID int, role, signingKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(userID),
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
			Subject:   strconv.Itoa(userID),
		},
	})
	return token.SignedString([]byte(signingKey))
}

func (s *ClientService) createSession(ctx context.Context, userID int, role, accessToken string) (models.Tokens, error) {
	var (
		res models.Tokens
		err error
	)

	res.AccessToken = accessToken

	res.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return res, err
		}
	}

	session := models.Session{
		UserID:       userID,
		Role:         role,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(sessionTTL),
	}
	if err = s.Sessions.SetSession(ctx, session); err != nil {
		return res, err
	}
	return res, nil
}

func (s *ClientService) LogOut(ctx context.Context, refreshToken string) error {
	return s.Sessions.DeleteSession(ctx, refreshToken)
}

func (s *ClientService) GetClientByID(ctx context.Context, id int) (models.Client, error) {
	client, err := s.ClientRepo.GetClientByID(ctx, id)
	if err != nil {
		return models.Client{}, err
	}
	client.Password = ""
	return client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	current, err := s.ClientRepo.GetClientByID(ctx, client.ID)
	if err != nil {
		return models.Client{}, err
	}

	if client.Name == "" {
		client.Name = current.Name
	}
	if client.Email == "" {
		client.Email = current.Email
	}
	if client.Email != current.Email {
		existing, err := s.ClientRepo.GetClientByEmail(ctx, client.Email)
		if err != nil {
			return models.Client{}, err
		}
		if existing.Email != "" && existing.ID != client.ID {
			return models.Client{}, models.ErrDuplicateEmail
		}
	}

	updated, err := s.ClientRepo.UpdateClient(ctx, client)
	if err != nil {
		return models.Client{}, err
	}
	updated.Password = ""
	return updated, nil
}

func (s *ClientService) UpdatePassword(ctx context.Context, clientID int, currentPassword, newPassword string) error {
	client, err := s.ClientRepo.GetClientByID(ctx, clientID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(currentPassword)); err != nil {
		return models.ErrInvalidPassword
	}
	if len(newPassword) < 6 {
		return errors.New("new password must be at least 6 characters long")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.ClientRepo.UpdatePassword(ctx, clientID, string(hashedPassword))
}

func (s *ClientService) UpdateAvatar(ctx context.Context, clientID int, avatarPath string) error {
	return s.ClientRepo.UpdateAvatar(ctx, clientID, avatarPath)
}

func (s *ClientService) DeleteClient(ctx context.Context, id int) error {
	return s.ClientRepo.DeleteClient(ctx, id)
}
