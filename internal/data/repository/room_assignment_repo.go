package repository

import (
	"context"
	"fmt"
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomAssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.RoomAssignment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.RoomAssignment, error)

	// FindOverlapping returns every assignment (any room) intersecting the
	// half-open range. Feeds the availability checker.
	FindOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]*entity.RoomAssignment, error)

	// CountOverlappingGuests sums occupied beds for one room over the range.
	// Run inside the booking transaction after locking the room row; this is
	// the write-side guard against double booking.
	CountOverlappingGuests(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
}

type roomAssignmentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoomAssignmentRepository(db database.Querier, log *zap.Logger) RoomAssignmentRepository {
	return &roomAssignmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_assignment")),
	}
}

const roomAssignmentColumns = `id, room_id, booking_id, client_id, check_in_date, check_out_date, guests, created_at`

func (r *roomAssignmentRepository) Create(ctx context.Context, assignment *entity.RoomAssignment) error {
	query := `
		INSERT INTO room_assignments (id, room_id, booking_id, client_id, check_in_date, check_out_date, guests, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		assignment.ID,
		assignment.RoomID,
		assignment.BookingID,
		assignment.ClientID,
		assignment.CheckIn,
		assignment.CheckOut,
		assignment.Guests,
		assignment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room assignment",
			zap.Error(err),
			zap.String("room_id", assignment.RoomID),
			zap.String("booking_id", assignment.BookingID.String()),
		)
		return fmt.Errorf("create room assignment for booking %s: %w", assignment.BookingID.String(), err)
	}

	return nil
}

func (r *roomAssignmentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.RoomAssignment, error) {
	query := `SELECT ` + roomAssignmentColumns + ` FROM room_assignments WHERE booking_id = $1 ORDER BY created_at`
	return r.queryAssignments(ctx, query, bookingID)
}

func (r *roomAssignmentRepository) FindOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]*entity.RoomAssignment, error) {
	// Half-open intervals: a stay ending on checkIn does not conflict.
	query := `SELECT ` + roomAssignmentColumns + ` FROM room_assignments
		WHERE check_in_date < $2 AND check_out_date > $1`
	return r.queryAssignments(ctx, query, checkIn, checkOut)
}

func (r *roomAssignmentRepository) CountOverlappingGuests(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	query := `
		SELECT COALESCE(SUM(guests), 0) FROM room_assignments
		WHERE room_id = $1 AND check_in_date < $3 AND check_out_date > $2
	`

	var guests int
	err := r.db.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&guests)
	if err != nil {
		r.log.Error("Failed to count overlapping guests",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return 0, fmt.Errorf("count overlapping guests for room %s: %w", roomID, err)
	}

	return guests, nil
}

func (r *roomAssignmentRepository) queryAssignments(ctx context.Context, query string, args ...any) ([]*entity.RoomAssignment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query room assignments", zap.Error(err))
		return nil, fmt.Errorf("query room assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*entity.RoomAssignment
	for rows.Next() {
		var a entity.RoomAssignment
		err := rows.Scan(
			&a.ID,
			&a.RoomID,
			&a.BookingID,
			&a.ClientID,
			&a.CheckIn,
			&a.CheckOut,
			&a.Guests,
			&a.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room assignment row", zap.Error(err))
			return nil, fmt.Errorf("scan room assignment row: %w", err)
		}
		assignments = append(assignments, &a)
	}

	return assignments, rows.Err()
}
