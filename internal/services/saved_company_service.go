package services

import (
	"context"
	"errors"

	"promasterBack/internal/models"
)

// savedCompanyStore is the slice of SavedCompanyRepository this service
// needs; companyChecker the slice of CompanyRepository.
type savedCompanyStore interface {
	AddSavedCompany(ctx context.Context, sc models.SavedCompany) (models.SavedCompany, error)
	GetSavedEntry(ctx context.Context, clientID, companyID int) (models.SavedCompany, error)
	GetSavedByID(ctx context.Context, id int) (models.SavedCompany, error)
	IsSaved(ctx context.Context, clientID, companyID int) (bool, error)
	RemoveSavedCompany(ctx context.Context, id int) error
	GetSavedByClient(ctx context.Context, clientID int) ([]models.SavedCompany, error)
}

type companyChecker interface {
	CompanyExists(ctx context.Context, id int) (bool, error)
}

type SavedCompanyService struct {
	SavedRepo   savedCompanyStore
	CompanyRepo companyChecker
}

// SaveCompany is idempotent: saving an already-saved company returns
// the existing entry and reports it was not created again.
func (s *SavedCompanyService) SaveCompany(ctx context.Context, clientID, companyID int) (models.SavedCompany, bool, error) {
	exists, err := s.CompanyRepo.CompanyExists(ctx, companyID)
	if err != nil {
		return models.SavedCompany{}, false, err
	}
	if !exists {
		return models.SavedCompany{}, false, models.ErrCompanyNotFound
	}

	existing, err := s.SavedRepo.GetSavedEntry(ctx, clientID, companyID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, models.ErrSavedNotFound) {
		return models.SavedCompany{}, false, err
	}

	created, err := s.SavedRepo.AddSavedCompany(ctx, models.SavedCompany{ClientID: clientID, CompanyID: companyID})
	if err != nil {
		return models.SavedCompany{}, false, err
	}
	return created, true, nil
}

// ToggleSavedCompany saves the company when unsaved and removes the
// entry when present. Returns whether the company ends up saved.
func (s *SavedCompanyService) ToggleSavedCompany(ctx context.Context, clientID, companyID int) (bool, error) {
	exists, err := s.CompanyRepo.CompanyExists(ctx, companyID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, models.ErrCompanyNotFound
	}

	entry, err := s.SavedRepo.GetSavedEntry(ctx, clientID, companyID)
	if err == nil {
		if err := s.SavedRepo.RemoveSavedCompany(ctx, entry.ID); err != nil {
			return true, err
		}
		return false, nil
	}
	if !errors.Is(err, models.ErrSavedNotFound) {
		return false, err
	}

	if _, err := s.SavedRepo.AddSavedCompany(ctx, models.SavedCompany{ClientID: clientID, CompanyID: companyID}); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveSaved deletes a saved entry, but only for the client that owns
// it.
func (s *SavedCompanyService) RemoveSaved(ctx context.Context, clientID, savedID int) error {
	entry, err := s.SavedRepo.GetSavedByID(ctx, savedID)
	if err != nil {
		return err
	}
	if entry.ClientID != clientID {
		return models.ErrSavedNotFound
	}
	return s.SavedRepo.RemoveSavedCompany(ctx, savedID)
}

func (s *SavedCompanyService) IsSaved(ctx context.Context, clientID, companyID int) (bool, error) {
	return s.SavedRepo.IsSaved(ctx, clientID, companyID)
}

func (s *SavedCompanyService) GetSavedByClient(ctx context.Context, clientID int) ([]models.SavedCompany, error) {
	return s.SavedRepo.GetSavedByClient(ctx, clientID)
}
