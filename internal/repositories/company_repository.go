package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"promasterBack/internal/models"
)

type CompanyRepository struct {
	DB *sql.DB
}

func encodeGallery(gallery []string) (string, error) {
	if gallery == nil {
		gallery = []string{}
	}
	data, err := json.Marshal(gallery)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeGallery(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var gallery []string
	if err := json.Unmarshal([]byte(raw.String), &gallery); err != nil {
		log.Printf("failed to decode company gallery: %v", err)
		return []string{}
	}
	return gallery
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	galleryJSON, err := encodeGallery(c.Gallery)
	if err != nil {
		return models.Company{}, err
	}
	query := `
		INSERT INTO companies (name, email, password, description, photo_url, gallery, rating, service_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		c.Name, c.Email, c.Password, c.Description, c.PhotoURL, galleryJSON, c.Rating, c.ServiceID,
	)
	if err != nil {
		return models.Company{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Company{}, err
	}
	c.ID = int(id)
	return c, nil
}

func (r *CompanyRepository) GetCompanyByID(ctx context.Context, id int) (models.Company, error) {
	query := `
		SELECT c.id, c.name, c.email, c.password, c.description, c.photo_url, c.gallery,
		       c.rating, c.service_id, s.name, c.created_at, c.updated_at
		FROM companies c
		JOIN services s ON c.service_id = s.id
		WHERE c.id = ?
	`
	var (
		c       models.Company
		gallery sql.NullString
		photo   sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Password, &c.Description, &photo, &gallery,
		&c.Rating, &c.ServiceID, &c.ServiceName, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, models.ErrCompanyNotFound
	}
	if err != nil {
		return models.Company{}, err
	}
	if photo.Valid {
		c.PhotoURL = &photo.String
	}
	c.Gallery = decodeGallery(gallery)
	return c, nil
}

func (r *CompanyRepository) GetCompanyByEmail(ctx context.Context, email string) (models.Company, error) {
	query := `
		SELECT id, name, email, password, description, photo_url, gallery, rating, service_id, created_at, updated_at
		FROM companies
		WHERE email = ?
	`
	var (
		c       models.Company
		gallery sql.NullString
		photo   sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&c.ID, &c.Name, &c.Email, &c.Password, &c.Description, &photo, &gallery,
		&c.Rating, &c.ServiceID, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, nil
	}
	if err != nil {
		return models.Company{}, err
	}
	if photo.Valid {
		c.PhotoURL = &photo.String
	}
	c.Gallery = decodeGallery(gallery)
	return c, nil
}

// GetCompaniesWithFilters drives the listings page: optional text query
// over name and description, optional service filter, rating-first
// ordering and LIMIT/OFFSET paging. Returns the page plus the total for
// pagination metadata.
func (r *CompanyRepository) GetCompaniesWithFilters(ctx context.Context, filter models.CompanyFilterRequest, viewerClientID int) ([]models.Company, int, error) {
	var (
		conditions []string
		params     []interface{}
	)

	baseQuery := `
		SELECT c.id, c.name, c.description, c.photo_url, c.gallery, c.rating, c.service_id, s.name,
		       CASE WHEN sc.id IS NOT NULL THEN 1 ELSE 0 END AS saved,
		       c.created_at, c.updated_at
		FROM companies c
		JOIN services s ON c.service_id = s.id
		LEFT JOIN saved_companies sc ON sc.company_id = c.id AND sc.client_id = ?
	`
	params = append(params, viewerClientID)

	if filter.Query != "" {
		conditions = append(conditions, "(LOWER(c.name) LIKE ? OR LOWER(c.description) LIKE ?)")
		like := "%" + strings.ToLower(filter.Query) + "%"
		params = append(params, like, like)
	}
	if filter.ServiceID > 0 {
		conditions = append(conditions, "c.service_id = ?")
		params = append(params, filter.ServiceID)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM companies c JOIN services s ON c.service_id = s.id` + where
	var total int
	// the count query has no saved_companies join, skip its parameter
	if err := r.DB.QueryRowContext(ctx, countQuery, params[1:]...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := baseQuery + where + `
		ORDER BY c.rating DESC, c.name ASC
		LIMIT ? OFFSET ?
	`
	offset := (filter.Page - 1) * filter.PerPage
	params = append(params, filter.PerPage, offset)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var (
			c       models.Company
			gallery sql.NullString
			photo   sql.NullString
			saved   int
		)
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &photo, &gallery, &c.Rating,
			&c.ServiceID, &c.ServiceName, &saved, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		if photo.Valid {
			c.PhotoURL = &photo.String
		}
		c.Gallery = decodeGallery(gallery)
		c.Saved = saved == 1
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("companies rows error: %w", err)
	}
	return companies, total, nil
}

// SearchCompanies also matches the joined service name, backing the
// search endpoint.
func (r *CompanyRepository) SearchCompanies(ctx context.Context, query string, limit, offset int) ([]models.Company, int, error) {
	like := "%" + strings.ToLower(query) + "%"
	where := ` WHERE LOWER(c.name) LIKE ? OR LOWER(c.description) LIKE ? OR LOWER(s.name) LIKE ?`

	var total int
	countQuery := `SELECT COUNT(*) FROM companies c JOIN services s ON c.service_id = s.id` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, like, like, like).Scan(&total); err != nil {
		return nil, 0, err
	}

	sqlQuery := `
		SELECT c.id, c.name, c.description, c.photo_url, c.rating, c.service_id, s.name
		FROM companies c
		JOIN services s ON c.service_id = s.id
	` + where + `
		ORDER BY c.rating DESC, c.name ASC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, sqlQuery, like, like, like, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var (
			c     models.Company
			photo sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &photo, &c.Rating, &c.ServiceID, &c.ServiceName); err != nil {
			return nil, 0, err
		}
		if photo.Valid {
			c.PhotoURL = &photo.String
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("company search rows error: %w", err)
	}
	return companies, total, nil
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	galleryJSON, err := encodeGallery(c.Gallery)
	if err != nil {
		return models.Company{}, err
	}
	query := `
		UPDATE companies
		SET name = ?, email = ?, description = ?, photo_url = ?, gallery = ?, service_id = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err = r.DB.ExecContext(ctx, query,
		c.Name, c.Email, c.Description, c.PhotoURL, galleryJSON, c.ServiceID, c.ID,
	)
	if err != nil {
		return models.Company{}, err
	}
	return r.GetCompanyByID(ctx, c.ID)
}

func (r *CompanyRepository) UpdatePassword(ctx context.Context, id int, hashedPassword string) error {
	query := `UPDATE companies SET password = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, hashedPassword, id)
	return err
}

func (r *CompanyRepository) UpdateRating(ctx context.Context, id int, rating float64) error {
	query := `UPDATE companies SET rating = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, rating, id)
	return err
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, id int) error {
	query := `DELETE FROM companies WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepository) CompanyExists(ctx context.Context, id int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies WHERE id = ?`, id).Scan(&count)
	return count > 0, err
}
