package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"promasterBack/internal/models"
)

type RatingRepository struct {
	DB *sql.DB
}

func (r *RatingRepository) CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings WHERE client_id = ? AND company_id = ?`,
		rating.ClientID, rating.CompanyID).Scan(&count); err != nil {
		return models.Rating{}, err
	}
	if count > 0 {
		return models.Rating{}, models.ErrAlreadyRated
	}

	query := `
		INSERT INTO ratings (client_id, company_id, rating, review, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, rating.ClientID, rating.CompanyID, rating.Rating, rating.Review)
	if err != nil {
		return models.Rating{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Rating{}, err
	}
	rating.ID = int(id)
	return rating, nil
}

func (r *RatingRepository) GetRatingByID(ctx context.Context, id int) (models.Rating, error) {
	query := `SELECT id, client_id, company_id, rating, review, created_at FROM ratings WHERE id = ?`
	var rating models.Rating
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rating.ID, &rating.ClientID, &rating.CompanyID, &rating.Rating, &rating.Review, &rating.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rating{}, models.ErrRatingNotFound
	}
	if err != nil {
		return models.Rating{}, err
	}
	return rating, nil
}

func (r *RatingRepository) GetRatingsByCompanyID(ctx context.Context, companyID, limit, offset int) ([]models.Rating, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings WHERE company_id = ?`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.client_id, r.company_id, r.rating, r.review,
		       cl.name, cl.avatar_path, r.created_at
		FROM ratings r
		JOIN clients cl ON r.client_id = cl.id
		WHERE r.company_id = ?
		ORDER BY r.created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	ratings := []models.Rating{}
	for rows.Next() {
		var rating models.Rating
		err := rows.Scan(&rating.ID, &rating.ClientID, &rating.CompanyID, &rating.Rating, &rating.Review,
			&rating.ClientName, &rating.ClientAvatarPath, &rating.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		if rating.ClientAvatarPath != nil && *rating.ClientAvatarPath == "" {
			rating.ClientAvatarPath = nil
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ratings rows error: %w", err)
	}
	return ratings, total, nil
}

// AverageForCompany computes AVG(rating); zero when the company has no
// ratings.
func (r *RatingRepository) AverageForCompany(ctx context.Context, companyID int) (float64, error) {
	var avg sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, `SELECT AVG(rating) FROM ratings WHERE company_id = ?`, companyID).Scan(&avg)
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

func (r *RatingRepository) UpdateRating(ctx context.Context, rating models.Rating) error {
	query := `UPDATE ratings SET rating = ?, review = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, rating.Rating, rating.Review, rating.ID)
	return err
}

func (r *RatingRepository) DeleteRating(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM ratings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRatingNotFound
	}
	return nil
}
