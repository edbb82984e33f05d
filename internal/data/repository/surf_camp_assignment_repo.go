package repository

import (
	"context"
	"fmt"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SurfCampAssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.SurfCampAssignment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.SurfCampAssignment, error)
}

type surfCampAssignmentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSurfCampAssignmentRepository(db database.Querier, log *zap.Logger) SurfCampAssignmentRepository {
	return &surfCampAssignmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "surf_camp_assignment")),
	}
}

func (r *surfCampAssignmentRepository) Create(ctx context.Context, assignment *entity.SurfCampAssignment) error {
	query := `
		INSERT INTO surf_camp_assignments (id, camp_id, booking_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		assignment.ID,
		assignment.CampID,
		assignment.BookingID,
		assignment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create surf camp assignment",
			zap.Error(err),
			zap.String("camp_id", assignment.CampID),
			zap.String("booking_id", assignment.BookingID.String()),
		)
		return fmt.Errorf("create surf camp assignment for booking %s: %w", assignment.BookingID.String(), err)
	}

	return nil
}

func (r *surfCampAssignmentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.SurfCampAssignment, error) {
	query := `
		SELECT id, camp_id, booking_id, created_at
		FROM surf_camp_assignments
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find surf camp assignments",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find surf camp assignments for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var assignments []*entity.SurfCampAssignment
	for rows.Next() {
		var a entity.SurfCampAssignment
		if err := rows.Scan(&a.ID, &a.CampID, &a.BookingID, &a.CreatedAt); err != nil {
			r.log.Error("Failed to scan surf camp assignment row", zap.Error(err))
			return nil, fmt.Errorf("scan surf camp assignment row: %w", err)
		}
		assignments = append(assignments, &a)
	}

	return assignments, rows.Err()
}
