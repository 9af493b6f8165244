package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"promasterBack/internal/models"
)

type SavedCompanyRepository struct {
	DB *sql.DB
}

func (r *SavedCompanyRepository) AddSavedCompany(ctx context.Context, sc models.SavedCompany) (models.SavedCompany, error) {
	query := `INSERT INTO saved_companies (client_id, company_id, saved_at) VALUES (?, ?, NOW())`
	result, err := r.DB.ExecContext(ctx, query, sc.ClientID, sc.CompanyID)
	if err != nil {
		return models.SavedCompany{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.SavedCompany{}, err
	}
	sc.ID = int(id)
	return sc, nil
}

func (r *SavedCompanyRepository) GetSavedEntry(ctx context.Context, clientID, companyID int) (models.SavedCompany, error) {
	query := `SELECT id, client_id, company_id, saved_at FROM saved_companies WHERE client_id = ? AND company_id = ?`
	var sc models.SavedCompany
	err := r.DB.QueryRowContext(ctx, query, clientID, companyID).Scan(&sc.ID, &sc.ClientID, &sc.CompanyID, &sc.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedCompany{}, models.ErrSavedNotFound
	}
	if err != nil {
		return models.SavedCompany{}, err
	}
	return sc, nil
}

func (r *SavedCompanyRepository) GetSavedByID(ctx context.Context, id int) (models.SavedCompany, error) {
	query := `SELECT id, client_id, company_id, saved_at FROM saved_companies WHERE id = ?`
	var sc models.SavedCompany
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&sc.ID, &sc.ClientID, &sc.CompanyID, &sc.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedCompany{}, models.ErrSavedNotFound
	}
	if err != nil {
		return models.SavedCompany{}, err
	}
	return sc, nil
}

func (r *SavedCompanyRepository) IsSaved(ctx context.Context, clientID, companyID int) (bool, error) {
	query := `SELECT COUNT(*) FROM saved_companies WHERE client_id = ? AND company_id = ?`
	var count int
	err := r.DB.QueryRowContext(ctx, query, clientID, companyID).Scan(&count)
	return count > 0, err
}

func (r *SavedCompanyRepository) RemoveSavedCompany(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM saved_companies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrSavedNotFound
	}
	return nil
}

func (r *SavedCompanyRepository) GetSavedByClient(ctx context.Context, clientID int) ([]models.SavedCompany, error) {
	query := `
		SELECT sc.id, sc.client_id, sc.company_id, sc.saved_at,
		       c.name, c.description, c.photo_url, c.rating, s.name
		FROM saved_companies sc
		JOIN companies c ON sc.company_id = c.id
		JOIN services s ON c.service_id = s.id
		WHERE sc.client_id = ?
		ORDER BY sc.saved_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := []models.SavedCompany{}
	for rows.Next() {
		var (
			sc    models.SavedCompany
			photo sql.NullString
		)
		err := rows.Scan(&sc.ID, &sc.ClientID, &sc.CompanyID, &sc.SavedAt,
			&sc.CompanyName, &sc.CompanyDescription, &photo, &sc.CompanyRating, &sc.ServiceName)
		if err != nil {
			return nil, err
		}
		if photo.Valid {
			sc.CompanyPhotoURL = &photo.String
		}
		saved = append(saved, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("saved companies rows error: %w", err)
	}
	return saved, nil
}
