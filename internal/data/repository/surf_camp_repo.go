package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SurfCampRepository interface {
	Create(ctx context.Context, camp *entity.SurfCamp) error
	Update(ctx context.Context, camp *entity.SurfCamp) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SurfCamp, error)
	FindAll(ctx context.Context) ([]*entity.SurfCamp, error)
	FindAllActive(ctx context.Context) ([]*entity.SurfCamp, error)
}

type surfCampRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSurfCampRepository(db database.Querier, log *zap.Logger) SurfCampRepository {
	return &surfCampRepository{
		db:  db,
		log: log.With(zap.String("repository", "surf_camp")),
	}
}

const surfCampColumns = `id, name, category, start_date, end_date, available_rooms, occupancy, price, level, is_active, created_at, updated_at`

func (r *surfCampRepository) Create(ctx context.Context, camp *entity.SurfCamp) error {
	query := `
		INSERT INTO surf_camps (id, name, category, start_date, end_date, available_rooms, occupancy, price, level, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	rooms, err := json.Marshal(camp.AvailableRooms)
	if err != nil {
		return fmt.Errorf("encode camp rooms: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		camp.ID,
		camp.Name,
		camp.Category,
		camp.StartDate,
		camp.EndDate,
		rooms,
		camp.Occupancy,
		camp.Price,
		camp.Level,
		camp.IsActive,
		camp.CreatedAt,
		camp.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create surf camp",
			zap.Error(err),
			zap.String("camp_id", camp.ID.String()),
			zap.String("name", camp.Name),
		)
		return fmt.Errorf("create surf camp %s: %w", camp.Name, err)
	}

	return nil
}

func (r *surfCampRepository) Update(ctx context.Context, camp *entity.SurfCamp) error {
	query := `
		UPDATE surf_camps
		SET name = $2, category = $3, start_date = $4, end_date = $5, available_rooms = $6,
		    occupancy = $7, price = $8, level = $9, is_active = $10, updated_at = $11
		WHERE id = $1
	`

	rooms, err := json.Marshal(camp.AvailableRooms)
	if err != nil {
		return fmt.Errorf("encode camp rooms: %w", err)
	}

	result, err := r.db.Exec(ctx, query,
		camp.ID,
		camp.Name,
		camp.Category,
		camp.StartDate,
		camp.EndDate,
		rooms,
		camp.Occupancy,
		camp.Price,
		camp.Level,
		camp.IsActive,
		camp.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update surf camp",
			zap.Error(err),
			zap.String("camp_id", camp.ID.String()),
		)
		return fmt.Errorf("update surf camp %s: %w", camp.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("surf camp %s not found", camp.ID.String())
	}

	return nil
}

func (r *surfCampRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM surf_camps WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete surf camp",
			zap.Error(err),
			zap.String("camp_id", id.String()),
		)
		return fmt.Errorf("delete surf camp %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("surf camp %s not found", id.String())
	}

	r.log.Info("Surf camp deleted", zap.String("camp_id", id.String()))
	return nil
}

func (r *surfCampRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SurfCamp, error) {
	query := `SELECT ` + surfCampColumns + ` FROM surf_camps WHERE id = $1`

	camp, err := scanSurfCamp(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find surf camp by ID",
			zap.Error(err),
			zap.String("camp_id", id.String()),
		)
		return nil, fmt.Errorf("find surf camp by ID %s: %w", id.String(), err)
	}

	return camp, nil
}

func (r *surfCampRepository) FindAll(ctx context.Context) ([]*entity.SurfCamp, error) {
	query := `SELECT ` + surfCampColumns + ` FROM surf_camps ORDER BY name`
	return r.queryCamps(ctx, query)
}

func (r *surfCampRepository) FindAllActive(ctx context.Context) ([]*entity.SurfCamp, error) {
	query := `SELECT ` + surfCampColumns + ` FROM surf_camps WHERE is_active = true ORDER BY name`
	return r.queryCamps(ctx, query)
}

func (r *surfCampRepository) queryCamps(ctx context.Context, query string, args ...any) ([]*entity.SurfCamp, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query surf camps", zap.Error(err))
		return nil, fmt.Errorf("query surf camps: %w", err)
	}
	defer rows.Close()

	var camps []*entity.SurfCamp
	for rows.Next() {
		camp, err := scanSurfCamp(rows)
		if err != nil {
			r.log.Error("Failed to scan surf camp row", zap.Error(err))
			return nil, fmt.Errorf("scan surf camp row: %w", err)
		}
		camps = append(camps, camp)
	}

	return camps, rows.Err()
}

func scanSurfCamp(row pgx.Row) (*entity.SurfCamp, error) {
	var camp entity.SurfCamp
	var rooms []byte

	err := row.Scan(
		&camp.ID,
		&camp.Name,
		&camp.Category,
		&camp.StartDate,
		&camp.EndDate,
		&rooms,
		&camp.Occupancy,
		&camp.Price,
		&camp.Level,
		&camp.IsActive,
		&camp.CreatedAt,
		&camp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(rooms) > 0 {
		if err := json.Unmarshal(rooms, &camp.AvailableRooms); err != nil {
			return nil, fmt.Errorf("decode camp rooms: %w", err)
		}
	}

	return &camp, nil
}
