package repositories

import (
	"context"
	"database/sql"
	"errors"

	"promasterBack/internal/models"
)

type ServiceRepository struct {
	DB *sql.DB
}

func (r *ServiceRepository) CreateService(ctx context.Context, s models.Service) (models.Service, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM services WHERE name = ?`, s.Name).Scan(&count); err != nil {
		return models.Service{}, err
	}
	if count > 0 {
		return models.Service{}, models.ErrDuplicateService
	}

	result, err := r.DB.ExecContext(ctx, `INSERT INTO services (name) VALUES (?)`, s.Name)
	if err != nil {
		return models.Service{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Service{}, err
	}
	s.ID = int(id)
	return s, nil
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	var s models.Service
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM services WHERE id = ?`, id).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, models.ErrServiceNotFound
	}
	if err != nil {
		return models.Service{}, err
	}
	return s, nil
}

func (r *ServiceRepository) GetServices(ctx context.Context, limit, offset int) ([]models.Service, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM services ORDER BY name ASC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, 0, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *ServiceRepository) UpdateService(ctx context.Context, s models.Service) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE services SET name = ? WHERE id = ?`, s.Name, s.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		if _, err := r.GetServiceByID(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) ServiceExists(ctx context.Context, id int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM services WHERE id = ?`, id).Scan(&count)
	return count > 0, err
}
