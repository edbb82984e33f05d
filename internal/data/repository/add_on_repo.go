package repository

import (
	"context"
	"fmt"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AddOnRepository interface {
	Create(ctx context.Context, addOn *entity.AddOn) error
	Update(ctx context.Context, addOn *entity.AddOn) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error)
	FindAll(ctx context.Context) ([]*entity.AddOn, error)
	FindAllActive(ctx context.Context) ([]*entity.AddOn, error)
}

type addOnRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAddOnRepository(db database.Querier, log *zap.Logger) AddOnRepository {
	return &addOnRepository{
		db:  db,
		log: log.With(zap.String("repository", "add_on")),
	}
}

const addOnColumns = `id, name, price, category, max_quantity, is_active, description, created_at, updated_at`

func (r *addOnRepository) Create(ctx context.Context, addOn *entity.AddOn) error {
	query := `
		INSERT INTO add_ons (id, name, price, category, max_quantity, is_active, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		addOn.ID,
		addOn.Name,
		addOn.Price,
		addOn.Category,
		addOn.MaxQuantity,
		addOn.IsActive,
		addOn.Description,
		addOn.CreatedAt,
		addOn.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create add-on",
			zap.Error(err),
			zap.String("add_on_id", addOn.ID.String()),
			zap.String("name", addOn.Name),
		)
		return fmt.Errorf("create add-on %s: %w", addOn.Name, err)
	}

	return nil
}

func (r *addOnRepository) Update(ctx context.Context, addOn *entity.AddOn) error {
	query := `
		UPDATE add_ons
		SET name = $2, price = $3, category = $4, max_quantity = $5, is_active = $6,
		    description = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		addOn.ID,
		addOn.Name,
		addOn.Price,
		addOn.Category,
		addOn.MaxQuantity,
		addOn.IsActive,
		addOn.Description,
		addOn.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update add-on",
			zap.Error(err),
			zap.String("add_on_id", addOn.ID.String()),
		)
		return fmt.Errorf("update add-on %s: %w", addOn.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("add-on %s not found", addOn.ID.String())
	}

	return nil
}

func (r *addOnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM add_ons WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete add-on",
			zap.Error(err),
			zap.String("add_on_id", id.String()),
		)
		return fmt.Errorf("delete add-on %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("add-on %s not found", id.String())
	}

	r.log.Info("Add-on deleted", zap.String("add_on_id", id.String()))
	return nil
}

func (r *addOnRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error) {
	query := `SELECT ` + addOnColumns + ` FROM add_ons WHERE id = $1`

	addOn, err := scanAddOn(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find add-on by ID",
			zap.Error(err),
			zap.String("add_on_id", id.String()),
		)
		return nil, fmt.Errorf("find add-on by ID %s: %w", id.String(), err)
	}

	return addOn, nil
}

func (r *addOnRepository) FindAll(ctx context.Context) ([]*entity.AddOn, error) {
	query := `SELECT ` + addOnColumns + ` FROM add_ons ORDER BY category, name`
	return r.queryAddOns(ctx, query)
}

func (r *addOnRepository) FindAllActive(ctx context.Context) ([]*entity.AddOn, error) {
	query := `SELECT ` + addOnColumns + ` FROM add_ons WHERE is_active = true ORDER BY category, name`
	return r.queryAddOns(ctx, query)
}

func (r *addOnRepository) queryAddOns(ctx context.Context, query string, args ...any) ([]*entity.AddOn, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query add-ons", zap.Error(err))
		return nil, fmt.Errorf("query add-ons: %w", err)
	}
	defer rows.Close()

	var addOns []*entity.AddOn
	for rows.Next() {
		addOn, err := scanAddOn(rows)
		if err != nil {
			r.log.Error("Failed to scan add-on row", zap.Error(err))
			return nil, fmt.Errorf("scan add-on row: %w", err)
		}
		addOns = append(addOns, addOn)
	}

	return addOns, rows.Err()
}

func scanAddOn(row pgx.Row) (*entity.AddOn, error) {
	var addOn entity.AddOn
	err := row.Scan(
		&addOn.ID,
		&addOn.Name,
		&addOn.Price,
		&addOn.Category,
		&addOn.MaxQuantity,
		&addOn.IsActive,
		&addOn.Description,
		&addOn.CreatedAt,
		&addOn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &addOn, nil
}
