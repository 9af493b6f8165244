package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"promasterBack/internal/config"
	"promasterBack/internal/handlers"
	"promasterBack/internal/models"
	"promasterBack/internal/repositories"
	"promasterBack/internal/services"
	"promasterBack/utils"
)

type application struct {
	errorLog   *log.Logger
	infoLog    *log.Logger
	signingKey string

	sessions  *repositories.SessionStore
	wsManager *WebSocketManager

	clientHandler  *handlers.ClientHandler
	companyHandler *handlers.CompanyHandler
	serviceHandler *handlers.ServiceHandler
	savedHandler   *handlers.SavedCompanyHandler
	ratingHandler  *handlers.RatingHandler
	messageHandler *handlers.MessageHandler
	messageService *services.MessageService
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	clientRepo := &repositories.ClientRepository{DB: db}
	companyRepo := &repositories.CompanyRepository{DB: db}
	serviceRepo := &repositories.ServiceRepository{DB: db}
	savedRepo := &repositories.SavedCompanyRepository{DB: db}
	ratingRepo := &repositories.RatingRepository{DB: db}
	messageRepo := &repositories.MessageRepository{DB: db}
	sessions := &repositories.SessionStore{RDB: rdb}

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}
	storage := utils.NewStorage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint)

	// Services
	clientService := &services.ClientService{
		ClientRepo:   clientRepo,
		Sessions:     sessions,
		TokenManager: tokenManager,
		SigningKey:   cfg.JWT.SigningKey,
	}
	companyService := &services.CompanyService{
		CompanyRepo:  companyRepo,
		ServiceRepo:  serviceRepo,
		Sessions:     sessions,
		TokenManager: tokenManager,
		Storage:      storage,
		SigningKey:   cfg.JWT.SigningKey,
	}
	serviceService := &services.ServiceService{ServiceRepo: serviceRepo}
	savedService := &services.SavedCompanyService{SavedRepo: savedRepo, CompanyRepo: companyRepo}
	ratingService := &services.RatingService{RatingsRepo: ratingRepo, CompanyRepo: companyRepo}
	messageService := &services.MessageService{
		MessageRepo: messageRepo,
		ClientRepo:  clientRepo,
		CompanyRepo: companyRepo,
	}

	app := &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		signingKey:     cfg.JWT.SigningKey,
		sessions:       sessions,
		clientHandler:  &handlers.ClientHandler{Service: clientService, Storage: storage},
		companyHandler: &handlers.CompanyHandler{Service: companyService},
		serviceHandler: &handlers.ServiceHandler{Service: serviceService, CompanyService: companyService},
		savedHandler:   &handlers.SavedCompanyHandler{Service: savedService},
		ratingHandler:  &handlers.RatingHandler{Service: ratingService},
		messageService: messageService,
	}
	app.messageHandler = &handlers.MessageHandler{
		Service: messageService,
		Notify: func(role string, userID int, msg models.Message) {
			app.notifyMessage(role, userID, msg)
		},
	}
	return app
}
