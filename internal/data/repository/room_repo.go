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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	FindAllActive(ctx context.Context) ([]*entity.Room, error)

	// LockByID takes a row lock on the room so availability can be rechecked
	// and the assignment inserted without a concurrent booking racing in
	// between. Only meaningful inside a transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
}

type roomRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoomRepository(db database.Querier, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, name, capacity, booking_type, pricing, amenities, images, is_active, description, created_at, updated_at`

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, name, capacity, booking_type, pricing, amenities, images, is_active, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	pricing, amenities, images, err := marshalRoomJSON(room)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Capacity,
		room.BookingType,
		pricing,
		amenities,
		images,
		room.IsActive,
		room.Description,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create room %s: %w", room.Name, err)
	}

	return nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET name = $2, capacity = $3, booking_type = $4, pricing = $5,
		    amenities = $6, images = $7, is_active = $8, description = $9, updated_at = $10
		WHERE id = $1
	`

	pricing, amenities, images, err := marshalRoomJSON(room)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Capacity,
		room.BookingType,
		pricing,
		amenities,
		images,
		room.IsActive,
		room.Description,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("lock room %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY name`
	return r.queryRooms(ctx, query)
}

func (r *roomRepository) FindAllActive(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE is_active = true ORDER BY name`
	return r.queryRooms(ctx, query)
}

func (r *roomRepository) queryRooms(ctx context.Context, query string, args ...any) ([]*entity.Room, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query rooms", zap.Error(err))
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

// scanRoom decodes one room row, unmarshalling the jsonb columns explicitly
// so a null column becomes the zero value rather than a codec error.
func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	var pricing, amenities, images []byte

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.BookingType,
		&pricing,
		&amenities,
		&images,
		&room.IsActive,
		&room.Description,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(pricing) > 0 {
		if err := json.Unmarshal(pricing, &room.Pricing); err != nil {
			return nil, fmt.Errorf("decode room pricing: %w", err)
		}
	}
	if len(amenities) > 0 {
		if err := json.Unmarshal(amenities, &room.Amenities); err != nil {
			return nil, fmt.Errorf("decode room amenities: %w", err)
		}
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &room.Images); err != nil {
			return nil, fmt.Errorf("decode room images: %w", err)
		}
	}

	return &room, nil
}

func marshalRoomJSON(room *entity.Room) (pricing, amenities, images []byte, err error) {
	if pricing, err = json.Marshal(room.Pricing); err != nil {
		return nil, nil, nil, fmt.Errorf("encode room pricing: %w", err)
	}
	if amenities, err = json.Marshal(room.Amenities); err != nil {
		return nil, nil, nil, fmt.Errorf("encode room amenities: %w", err)
	}
	if images, err = json.Marshal(room.Images); err != nil {
		return nil, nil, nil, fmt.Errorf("encode room images: %w", err)
	}
	return pricing, amenities, images, nil
}
