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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_ref, booking_type, status, total_amount, breakdown, add_ons, source_url, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_ref, booking_type, status, total_amount, breakdown, add_ons, source_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var breakdown []byte
	if booking.Breakdown != nil {
		var err error
		if breakdown, err = json.Marshal(booking.Breakdown); err != nil {
			return fmt.Errorf("encode booking breakdown: %w", err)
		}
	}

	addOns, err := json.Marshal(booking.AddOns)
	if err != nil {
		return fmt.Errorf("encode booking add-ons: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingRef,
		booking.BookingType,
		booking.Status,
		booking.TotalAmount,
		breakdown,
		addOns,
		booking.SourceURL,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_ref", booking.BookingRef),
			zap.String("booking_type", string(booking.BookingType)),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingRef, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Booking, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find bookings by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find bookings by IDs: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var breakdown, addOns []byte

	err := row.Scan(
		&booking.ID,
		&booking.BookingRef,
		&booking.BookingType,
		&booking.Status,
		&booking.TotalAmount,
		&breakdown,
		&addOns,
		&booking.SourceURL,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(breakdown) > 0 {
		booking.Breakdown = &entity.PriceBreakdown{}
		if err := json.Unmarshal(breakdown, booking.Breakdown); err != nil {
			return nil, fmt.Errorf("decode booking breakdown: %w", err)
		}
	}
	if len(addOns) > 0 {
		if err := json.Unmarshal(addOns, &booking.AddOns); err != nil {
			return nil, fmt.Errorf("decode booking add-ons: %w", err)
		}
	}

	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
