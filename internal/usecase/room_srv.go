package usecase

import (
	"context"
	"fmt"
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/internal/data/repository"
	"surfcamp-booking/internal/domain/availability"
	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/internal/dto/response"
	"surfcamp-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	// Public endpoints
	GetPublicRooms(ctx context.Context) ([]response.PublicRoomResponse, error)
	CheckAvailability(ctx context.Context, startDate, endDate string, guests int) (*response.AvailabilityResponse, error)

	// Admin endpoints
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.SaveRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.SaveRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

// GetPublicRooms lists active rooms in the marketing-site shape.
func (s *roomService) GetPublicRooms(ctx context.Context) ([]response.PublicRoomResponse, error) {
	rooms, err := s.repo.Room.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active rooms", zap.Error(err))
		return nil, fmt.Errorf("list active rooms: %w", err)
	}

	result := make([]response.PublicRoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = response.RoomToPublic(room)
	}
	return result, nil
}

// CheckAvailability returns the active rooms that can take the requested
// guests for the half-open [start_date, end_date) window.
func (s *roomService) CheckAvailability(ctx context.Context, startDate, endDate string, guests int) (*response.AvailabilityResponse, error) {
	checkIn, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, NewValidationError(errInvalidDateFormat)
	}
	checkOut, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, NewValidationError(errInvalidDateFormat)
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError(errInvalidDateRange)
	}
	if guests < 1 {
		guests = 1
	}

	rooms, err := s.repo.Room.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active rooms", zap.Error(err))
		return nil, fmt.Errorf("list active rooms: %w", err)
	}

	assignments, err := s.repo.RoomAssignment.FindOverlapping(ctx, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to load overlapping assignments",
			zap.Error(err),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("load overlapping assignments: %w", err)
	}

	available := availability.ListAvailableRooms(rooms, assignments, checkIn, checkOut, guests)

	publicRooms := make([]response.PublicRoomResponse, len(available))
	for i, room := range available {
		publicRooms[i] = response.RoomToPublic(room)
	}

	return &response.AvailabilityResponse{
		AvailableRooms: publicRooms,
		RequestedDates: response.RequestedDates{
			StartDate: startDate,
			EndDate:   endDate,
			Guests:    guests,
		},
		TotalRooms: len(publicRooms),
	}, nil
}

// ==================== ADMIN METHODS ====================

func (s *roomService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	result := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = response.RoomToResponse(room)
	}
	return result, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.SaveRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyRoomRequest(room, req)

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created", zap.String("room_id", room.ID.String()), zap.String("name", room.Name))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.SaveRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(utils.FormatValidationErrors(errs))
	}

	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	applyRoomRequest(room, req)
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room %s: %w", roomID, err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return err
	}

	if err := s.repo.Room.Delete(ctx, room.ID); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func (s *roomService) findRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}
	return room, nil
}

func applyRoomRequest(room *entity.Room, req *request.SaveRoomRequest) {
	room.Name = req.Name
	room.Capacity = req.Capacity
	room.Amenities = req.Amenities
	room.Images = req.Images
	room.Description = req.Description
	room.IsActive = req.Active()

	room.BookingType = entity.RoomBookingType(req.BookingType)
	if room.BookingType == "" {
		room.BookingType = entity.RoomBookingWhole
	}
	if req.Pricing != nil {
		room.Pricing = *req.Pricing
	}
}
