package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"promasterBack/internal/models"
	"promasterBack/internal/repositories"
	"promasterBack/utils"
)

const defaultCompanyPhoto = "/static/images/default_company.png"

type CompanyService struct {
	CompanyRepo  *repositories.CompanyRepository
	ServiceRepo  *repositories.ServiceRepository
	Sessions     *repositories.SessionStore
	TokenManager *utils.Manager
	Storage      *utils.Storage
	SigningKey   string
}

// sessionHelper reuses the client-side session flow, so both roles get
// refresh tokens from the same generator.
func (s *CompanyService) sessionHelper() *ClientService {
	return &ClientService{
		Sessions:     s.Sessions,
		TokenManager: s.TokenManager,
		SigningKey:   s.SigningKey,
	}
}

func (s *CompanyService) SignUp(ctx context.Context, company models.Company) (models.Company, error) {
	existing, err := s.CompanyRepo.GetCompanyByEmail(ctx, company.Email)
	if err != nil {
		return models.Company{}, err
	}
	if existing.Email != "" {
		return models.Company{}, models.ErrDuplicateEmail
	}

	exists, err := s.ServiceRepo.ServiceExists(ctx, company.ServiceID)
	if err != nil {
		return models.Company{}, err
	}
	if !exists {
		return models.Company{}, models.ErrServiceNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(company.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Company{}, err
	}
	company.Password = string(hashedPassword)
	if company.PhotoURL == nil {
		photo := defaultCompanyPhoto
		company.PhotoURL = &photo
	}

	created, err := s.CompanyRepo.CreateCompany(ctx, company)
	if err != nil {
		return models.Company{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *CompanyService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	company, err := s.CompanyRepo.GetCompanyByEmail(ctx, email)
	if err != nil {
		return models.Tokens{}, err
	}
	if company.Email == "" {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(company.Password), []byte(password)); err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := signAccessToken(company.ID, "company", s.SigningKey)
	if err != nil {
		return models.Tokens{}, err
	}

	return s.sessionHelper().createSession(ctx, company.ID, "company", accessToken)
}

func (s *CompanyService) GetCompanyByID(ctx context.Context, id int) (models.Company, error) {
	company, err := s.CompanyRepo.GetCompanyByID(ctx, id)
	if err != nil {
		return models.Company{}, err
	}
	company.Password = ""
	return company, nil
}

func (s *CompanyService) GetCompanies(ctx context.Context, filter models.CompanyFilterRequest, viewerClientID int) (models.CompanyListResponse, error) {
	companies, total, err := s.CompanyRepo.GetCompaniesWithFilters(ctx, filter, viewerClientID)
	if err != nil {
		return models.CompanyListResponse{}, err
	}
	return models.CompanyListResponse{
		Companies:  companies,
		Pagination: models.NewPagination(total, filter.Page, filter.PerPage),
	}, nil
}

func (s *CompanyService) SearchCompanies(ctx context.Context, query string, page, perPage int) (models.CompanyListResponse, error) {
	if query == "" {
		return models.CompanyListResponse{
			Companies:  []models.Company{},
			Pagination: models.NewPagination(0, 1, perPage),
		}, nil
	}
	offset := (page - 1) * perPage
	companies, total, err := s.CompanyRepo.SearchCompanies(ctx, query, perPage, offset)
	if err != nil {
		return models.CompanyListResponse{}, err
	}
	return models.CompanyListResponse{
		Companies:  companies,
		Pagination: models.NewPagination(total, page, perPage),
	}, nil
}

// UpdateCompany applies the edit-profile rules: the current password
// must verify before anything changes, the email must stay unique among
// companies, and a new service must exist.
func (s *CompanyService) UpdateCompany(ctx context.Context, companyID int, req models.CompanyUpdateRequest) (models.Company, error) {
	company, err := s.CompanyRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return models.Company{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(company.Password), []byte(req.CurrentPassword)); err != nil {
		return models.Company{}, models.ErrInvalidPassword
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Email != "" && req.Email != company.Email {
		existing, err := s.CompanyRepo.GetCompanyByEmail(ctx, req.Email)
		if err != nil {
			return models.Company{}, err
		}
		if existing.Email != "" && existing.ID != companyID {
			return models.Company{}, models.ErrDuplicateEmail
		}
		company.Email = req.Email
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.ServiceID != 0 && req.ServiceID != company.ServiceID {
		exists, err := s.ServiceRepo.ServiceExists(ctx, req.ServiceID)
		if err != nil {
			return models.Company{}, err
		}
		if !exists {
			return models.Company{}, models.ErrServiceNotFound
		}
		company.ServiceID = req.ServiceID
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			return models.Company{}, errors.New("new password must be at least 6 characters long")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.Company{}, err
		}
		if err := s.CompanyRepo.UpdatePassword(ctx, companyID, string(hashedPassword)); err != nil {
			return models.Company{}, err
		}
	}

	updated, err := s.CompanyRepo.UpdateCompany(ctx, company)
	if err != nil {
		return models.Company{}, err
	}
	updated.Password = ""
	return updated, nil
}

// SetMainPhoto uploads a new main photo and deletes the previous one
// from storage when it was uploaded by us.
func (s *CompanyService) SetMainPhoto(ctx context.Context, companyID int, file []byte, fileName, contentType string) (string, error) {
	company, err := s.CompanyRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return "", err
	}

	url, err := s.Storage.UploadFile(file, fileName, "companies", contentType)
	if err != nil {
		return "", err
	}

	if company.PhotoURL != nil && *company.PhotoURL != defaultCompanyPhoto {
		if err := s.Storage.DeleteFile(*company.PhotoURL); err != nil {
			// old object left behind; the new photo is already live
			return url, nil
		}
	}

	company.PhotoURL = &url
	_, err = s.CompanyRepo.UpdateCompany(ctx, company)
	return url, err
}

func (s *CompanyService) RemoveMainPhoto(ctx context.Context, companyID int) error {
	company, err := s.CompanyRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company.PhotoURL == nil || *company.PhotoURL == defaultCompanyPhoto {
		return nil
	}
	if err := s.Storage.DeleteFile(*company.PhotoURL); err != nil {
		return err
	}
	photo := defaultCompanyPhoto
	company.PhotoURL = &photo
	_, err = s.CompanyRepo.UpdateCompany(ctx, company)
	return err
}

func (s *CompanyService) AddGalleryImage(ctx context.Context, companyID int, file []byte, fileName, contentType string) ([]string, error) {
	company, err := s.CompanyRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.UploadFile(file, fileName, "companies/gallery", contentType)
	if err != nil {
		return nil, err
	}

	company.Gallery = append(company.Gallery, url)
	updated, err := s.CompanyRepo.UpdateCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	return updated.Gallery, nil
}

func (s *CompanyService) RemoveGalleryImage(ctx context.Context, companyID int, imageURL string) ([]string, error) {
	company, err := s.CompanyRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(company.Gallery))
	found := false
	for _, img := range company.Gallery {
		if img == imageURL {
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		return company.Gallery, nil
	}
	if err := s.Storage.DeleteFile(imageURL); err != nil {
		return nil, err
	}

	company.Gallery = kept
	updated, err := s.CompanyRepo.UpdateCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	return updated.Gallery, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id int) error {
	return s.CompanyRepo.DeleteCompany(ctx, id)
}
