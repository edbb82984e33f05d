package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/internal/data/repository"
	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/pkg/database"
	"surfcamp-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fakeDB scripts the Querier surface so the orchestrator can run without a
// database. Exec calls are recorded; failures are injected per statement.
type fakeDB struct {
	execs     []string
	execErr   func(sql string, nth int) error
	queryRows []*scriptRow

	beginCalls int
	committed  bool
	rolledBack bool
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.execErr != nil {
		if err := f.execErr(sql, len(f.execs)); err != nil {
			return pgconn.CommandTag{}, err
		}
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("unexpected query: %s", sql)
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	if len(f.queryRows) == 0 {
		return &scriptRow{err: pgx.ErrNoRows}
	}
	row := f.queryRows[0]
	f.queryRows = f.queryRows[1:]
	return row
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	f.beginCalls++
	return &fakeTx{db: f}, nil
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close()                     {}

func (f *fakeDB) execsMatching(substr string) int {
	count := 0
	for _, sql := range f.execs {
		if strings.Contains(sql, substr) {
			count++
		}
	}
	return count
}

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, args...)
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.db.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.db.committed {
		t.db.rolledBack = true
	}
	return nil
}

// scriptRow plays back one row of column values through Scan.
type scriptRow struct {
	values []any
	err    error
}

func (r *scriptRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		if i >= len(r.values) {
			break
		}
		assign(d, r.values[i])
	}
	return nil
}

func assign(dest, value any) {
	switch d := dest.(type) {
	case *uuid.UUID:
		v, _ := value.(uuid.UUID)
		*d = v
	case *string:
		*d, _ = value.(string)
	case *int:
		*d, _ = value.(int)
	case *bool:
		*d, _ = value.(bool)
	case *float64:
		*d, _ = value.(float64)
	case *[]byte:
		*d, _ = value.([]byte)
	case *time.Time:
		*d, _ = value.(time.Time)
	case *entity.RoomBookingType:
		v, _ := value.(string)
		*d = entity.RoomBookingType(v)
	case *entity.BookingType:
		v, _ := value.(string)
		*d = entity.BookingType(v)
	case *entity.BookingStatus:
		v, _ := value.(string)
		*d = entity.BookingStatus(v)
	case **string:
		if v, ok := value.(string); ok {
			*d = &v
		} else {
			*d = nil
		}
	case **int:
		if v, ok := value.(int); ok {
			*d = &v
		} else {
			*d = nil
		}
	case *entity.AddOnCategory:
		v, _ := value.(string)
		*d = entity.AddOnCategory(v)
	}
}

func bookingRow(id uuid.UUID, status string) *scriptRow {
	now := time.Now()
	return &scriptRow{values: []any{
		id, "SRF-20260201-120000-0001", "room", status, 240.0,
		[]byte(nil), []byte(nil), nil, now, now,
	}}
}

func newBookingService(db *fakeDB) BookingService {
	logger := zap.NewNop()
	repo := repository.NewRepository(db, logger)
	return NewBookingService(db, repo, &utils.Config{}, logger)
}

func roomBookingRequest(participants ...request.ParticipantRequest) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		BookingType:  "room",
		RoomID:       "room-1",
		StartDate:    "2026-02-01",
		EndDate:      "2026-02-03",
		Participants: participants,
		Pricing: &request.BookingPricingRequest{
			Total:     240,
			Breakdown: map[string]float64{"subtotal": 240},
		},
	}
}

func TestCreateBookingRoomSuccess(t *testing.T) {
	db := &fakeDB{}
	service := newBookingService(db)

	resp, err := service.CreateBooking(context.Background(), roomBookingRequest(validParticipant(), validParticipant()))
	require.NoError(t, err)

	assert.Equal(t, "room", resp.BookingType)
	assert.Equal(t, 2, resp.ParticipantsCreated)
	assert.Equal(t, "confirmed", resp.Status)
	_, parseErr := uuid.Parse(resp.BookingID)
	assert.NoError(t, parseErr)

	assert.Equal(t, 1, db.execsMatching("INSERT INTO bookings"))
	assert.Equal(t, 2, db.execsMatching("INSERT INTO clients"))
	assert.Equal(t, 2, db.execsMatching("INSERT INTO room_assignments"))
	assert.True(t, db.committed)
	assert.False(t, db.rolledBack)
}

func TestCreateBookingSurfWeekSuccess(t *testing.T) {
	db := &fakeDB{}
	service := newBookingService(db)

	req := &request.CreateBookingRequest{
		BookingType:  "surf_week",
		CampID:       "camp-1",
		Participants: []request.ParticipantRequest{validParticipant()},
		Pricing:      &request.BookingPricingRequest{Total: 450},
	}

	resp, err := service.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "surf_week", resp.BookingType)
	assert.Equal(t, 1, resp.ParticipantsCreated)
	assert.Equal(t, 1, db.execsMatching("INSERT INTO surf_camp_assignments"))
	assert.Equal(t, 0, db.execsMatching("INSERT INTO room_assignments"))
	assert.True(t, db.committed)
}

func addOnRow(id uuid.UUID, price float64, maxQuantity int) *scriptRow {
	now := time.Now()
	return &scriptRow{values: []any{
		id, "Surfboard rental", price, "equipment", maxQuantity, true, "daily board hire", now, now,
	}}
}

func TestCreateBookingCatalogAddOnQuantityAboveCapRejected(t *testing.T) {
	addOnID := uuid.New()
	db := &fakeDB{queryRows: []*scriptRow{addOnRow(addOnID, 15, 1)}}
	service := newBookingService(db)

	req := &request.CreateBookingRequest{
		BookingType:  "surf_week",
		CampID:       "camp-1",
		Participants: []request.ParticipantRequest{validParticipant()},
		AddOns: []request.BookingAddOnRequest{
			{ID: addOnID.String(), Name: "Surfboard rental", Price: 15, Quantity: 3},
		},
	}

	_, err := service.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "allows at most 1")
	assert.Equal(t, 0, db.execsMatching("INSERT INTO bookings"))
	assert.False(t, db.committed)
	assert.True(t, db.rolledBack)
}

func TestCreateBookingValidationFailureSkipsTransaction(t *testing.T) {
	db := &fakeDB{}
	service := newBookingService(db)

	_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields: booking_type and participants", verr.Message)
	assert.Equal(t, 0, db.beginCalls)
	assert.Empty(t, db.execs)
}

func TestCreateBookingBookingInsertFailure(t *testing.T) {
	db := &fakeDB{
		execErr: func(sql string, _ int) error {
			if strings.Contains(sql, "INSERT INTO bookings") {
				return errors.New("connection reset")
			}
			return nil
		},
	}
	service := newBookingService(db)

	_, err := service.CreateBooking(context.Background(), roomBookingRequest(validParticipant()))

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageCreatingBooking, serr.Stage)
	assert.Equal(t, "Failed to create booking", err.Error())
	assert.Equal(t, 0, db.execsMatching("INSERT INTO clients"))
	assert.True(t, db.rolledBack)
	assert.False(t, db.committed)
}

func TestCreateBookingSecondParticipantFailureAbortsSequence(t *testing.T) {
	clientInserts := 0
	db := &fakeDB{}
	db.execErr = func(sql string, _ int) error {
		if strings.Contains(sql, "INSERT INTO clients") {
			clientInserts++
			if clientInserts == 2 {
				return errors.New("unique violation")
			}
		}
		return nil
	}
	service := newBookingService(db)

	_, err := service.CreateBooking(context.Background(),
		roomBookingRequest(validParticipant(), validParticipant(), validParticipant()))

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageCreatingParticipants, serr.Stage)
	assert.Equal(t, "Failed to create participant 2", err.Error())

	// The third participant was never attempted and no assignments were written.
	assert.Equal(t, 2, db.execsMatching("INSERT INTO clients"))
	assert.Equal(t, 0, db.execsMatching("INSERT INTO room_assignments"))
	assert.True(t, db.rolledBack)
	assert.False(t, db.committed)
}

func TestCreateBookingManagedRoomConflict(t *testing.T) {
	roomID := uuid.New()
	now := time.Now()

	db := &fakeDB{
		queryRows: []*scriptRow{
			// Locked room row: whole-room, capacity 2
			{values: []any{roomID, "Sea View", 2, "whole", []byte(nil), []byte(nil), []byte(nil), true, "", now, now}},
			// Occupancy recheck: two guests already assigned
			{values: []any{2}},
		},
	}
	service := newBookingService(db)

	req := roomBookingRequest(validParticipant())
	req.RoomID = roomID.String()

	_, err := service.CreateBooking(context.Background(), req)

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageCreatingAssignments, serr.Stage)
	assert.Equal(t, fmt.Sprintf("room %s is not available for the selected dates", roomID), err.Error())
	assert.Equal(t, 0, db.execsMatching("INSERT INTO room_assignments"))
	assert.True(t, db.rolledBack)
}

func TestUpdateBookingStatusCancelledIsTerminal(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{queryRows: []*scriptRow{bookingRow(id, "cancelled")}}
	service := newBookingService(db)

	err := service.UpdateBookingStatus(context.Background(), id.String(),
		&request.UpdateBookingStatusRequest{Status: "confirmed"})

	require.Error(t, err)
	assert.Equal(t, "cannot change status of a cancelled booking", err.Error())
	assert.Equal(t, 0, db.execsMatching("UPDATE bookings"))
}

func TestUpdateBookingStatusConfirmsPendingBooking(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{queryRows: []*scriptRow{bookingRow(id, "pending")}}
	service := newBookingService(db)

	err := service.UpdateBookingStatus(context.Background(), id.String(),
		&request.UpdateBookingStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, 1, db.execsMatching("UPDATE bookings"))
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	db := &fakeDB{}
	service := newBookingService(db)

	err := service.UpdateBookingStatus(context.Background(), uuid.NewString(),
		&request.UpdateBookingStatusRequest{Status: "archived"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, db.execs)
}

func TestCreateBookingGeneratesDistinctIDs(t *testing.T) {
	db := &fakeDB{}
	service := newBookingService(db)

	first, err := service.CreateBooking(context.Background(), roomBookingRequest(validParticipant()))
	require.NoError(t, err)
	second, err := service.CreateBooking(context.Background(), roomBookingRequest(validParticipant()))
	require.NoError(t, err)

	assert.NotEqual(t, first.BookingID, second.BookingID)
}
