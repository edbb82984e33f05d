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

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Client, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Client, error)
}

type clientRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewClientRepository(db database.Querier, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:  db,
		log: log.With(zap.String("repository", "client")),
	}
}

const clientColumns = `id, booking_id, first_name, last_name, email, phone, date_of_birth,
	emergency_contact_name, emergency_contact_phone, dietary_restrictions, medical_conditions,
	surf_level, created_at, updated_at`

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, booking_id, first_name, last_name, email, phone, date_of_birth,
			emergency_contact_name, emergency_contact_phone, dietary_restrictions, medical_conditions,
			surf_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		client.ID,
		client.BookingID,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Phone,
		client.DateOfBirth,
		client.EmergencyContactName,
		client.EmergencyContactPhone,
		client.DietaryRestrictions,
		client.MedicalConditions,
		client.SurfLevel,
		client.CreatedAt,
		client.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create client",
			zap.Error(err),
			zap.String("booking_id", client.BookingID.String()),
			zap.String("email", client.Email),
		)
		return fmt.Errorf("create client for booking %s: %w", client.BookingID.String(), err)
	}

	return nil
}

func (r *clientRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE booking_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find clients by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find clients by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE lower(email) = lower($1) ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find clients by email", zap.Error(err))
		return nil, fmt.Errorf("find clients by email: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func collectClients(rows pgx.Rows) ([]*entity.Client, error) {
	var clients []*entity.Client
	for rows.Next() {
		var client entity.Client
		err := rows.Scan(
			&client.ID,
			&client.BookingID,
			&client.FirstName,
			&client.LastName,
			&client.Email,
			&client.Phone,
			&client.DateOfBirth,
			&client.EmergencyContactName,
			&client.EmergencyContactPhone,
			&client.DietaryRestrictions,
			&client.MedicalConditions,
			&client.SurfLevel,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, &client)
	}
	return clients, rows.Err()
}
