package repositories

import (
	"context"
	"database/sql"
	"errors"

	"promasterBack/internal/models"
)

type ClientRepository struct {
	DB *sql.DB
}

func (r *ClientRepository) CreateClient(ctx context.Context, c models.Client) (models.Client, error) {
	query := `
		INSERT INTO clients (name, email, password, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Email, c.Password)
	if err != nil {
		return models.Client{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Client{}, err
	}
	c.ID = int(id)
	return c, nil
}

func (r *ClientRepository) GetClientByID(ctx context.Context, id int) (models.Client, error) {
	query := `
		SELECT id, name, email, password, avatar_path, created_at, updated_at
		FROM clients
		WHERE id = ?
	`
	var c models.Client
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Password, &c.AvatarPath, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, models.ErrClientNotFound
	}
	if err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// GetClientByEmail returns the zero Client when no row matches, so
// callers can use it for duplicate checks without handling ErrNoRows.
func (r *ClientRepository) GetClientByEmail(ctx context.Context, email string) (models.Client, error) {
	query := `
		SELECT id, name, email, password, avatar_path, created_at, updated_at
		FROM clients
		WHERE email = ?
	`
	var c models.Client
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&c.ID, &c.Name, &c.Email, &c.Password, &c.AvatarPath, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, nil
	}
	if err != nil {
		return models.Client{}, err
	}
	return c, nil
}

func (r *ClientRepository) UpdateClient(ctx context.Context, c models.Client) (models.Client, error) {
	query := `
		UPDATE clients
		SET name = ?, email = ?, updated_at = NOW()
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Email, c.ID)
	if err != nil {
		return models.Client{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Client{}, err
	}
	if rowsAffected == 0 {
		// the row may exist with identical values; distinguish from a
		// missing client before reporting not found
		if _, err := r.GetClientByID(ctx, c.ID); err != nil {
			return models.Client{}, err
		}
	}
	return r.GetClientByID(ctx, c.ID)
}

func (r *ClientRepository) UpdatePassword(ctx context.Context, id int, hashedPassword string) error {
	query := `UPDATE clients SET password = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, hashedPassword, id)
	return err
}

func (r *ClientRepository) UpdateAvatar(ctx context.Context, id int, avatarPath string) error {
	query := `UPDATE clients SET avatar_path = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, avatarPath, id)
	return err
}

func (r *ClientRepository) DeleteClient(ctx context.Context, id int) error {
	query := `DELETE FROM clients WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrClientNotFound
	}
	return nil
}
