package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

// LocationRepository encapsulates location persistence. Lookups by area name
// are case-sensitive exact matches on the natural key.
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, location *domain.Location) error
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	GetByAreaName(ctx context.Context, areaName string) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	Delete(ctx context.Context, id string) error
}

type locationRepository struct {
	pool *pgxpool.Pool
}

// NewLocationRepository instantiates repository.
func NewLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &locationRepository{pool: pool}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	const query = `
        INSERT INTO locations (area_name, city, pincode)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		location.AreaName,
		location.City,
		location.Pincode,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
}

func (r *locationRepository) Update(ctx context.Context, location *domain.Location) error {
	const query = `
        UPDATE locations SET area_name=$1, city=$2, pincode=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		location.AreaName,
		location.City,
		location.Pincode,
		location.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	const query = `
        SELECT id, area_name, city, pincode, created_at, updated_at
        FROM locations WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *locationRepository) GetByAreaName(ctx context.Context, areaName string) (*domain.Location, error) {
	const query = `
        SELECT id, area_name, city, pincode, created_at, updated_at
        FROM locations WHERE area_name=$1`
	return r.fetchSingle(ctx, query, areaName)
}

func (r *locationRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Location, error) {
	var location domain.Location
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&location.ID,
		&location.AreaName,
		&location.City,
		&location.Pincode,
		&location.CreatedAt,
		&location.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context) ([]domain.Location, error) {
	const query = `
        SELECT id, area_name, city, pincode, created_at, updated_at
        FROM locations ORDER BY area_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Location
	for rows.Next() {
		var location domain.Location
		if err := rows.Scan(
			&location.ID,
			&location.AreaName,
			&location.City,
			&location.Pincode,
			&location.CreatedAt,
			&location.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, location)
	}
	return result, rows.Err()
}

// Delete removes a location without touching complaints that reference it.
// Dangling references are a known risk of the model.
func (r *locationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM locations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
