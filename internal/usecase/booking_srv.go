package usecase

import (
	"context"
	"fmt"
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/internal/data/repository"
	"surfcamp-booking/internal/domain/pricing"
	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/internal/dto/response"
	"surfcamp-booking/pkg/database"
	"surfcamp-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoint
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)

	// Admin endpoints
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	db     database.PgxIface
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		db:     db,
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the creation sequence: validate, create the booking
// row, create one client row per participant in order, create the
// type-specific assignment rows. All writes share one transaction, so a
// failure at any stage leaves no partial rows behind; the stage error
// messages are part of the API contract regardless.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	if verr := validateBookingRequest(req); verr != nil {
		s.log.Warn("Create booking validation failed", zap.String("reason", verr.Message))
		return nil, verr
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin booking transaction", zap.Error(err))
		return nil, &StageError{Stage: StageCreatingBooking, Message: "Failed to create booking", Err: err}
	}
	defer tx.Rollback(ctx)

	repos := s.repo.WithTx(tx)

	// CREATING_BOOKING
	now := time.Now()
	total, breakdown, err := s.resolvePricing(ctx, repos, req)
	if err != nil {
		return nil, err
	}
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingRef:  utils.GenerateBookingRef(),
		BookingType: entity.BookingType(req.BookingType),
		Status:      entity.BookingStatusConfirmed,
		TotalAmount: total,
		Breakdown:   breakdown,
		AddOns:      requestAddOns(req.AddOns),
	}
	if req.SourceURL != "" {
		booking.SourceURL = &req.SourceURL
	}

	if err := repos.Booking.Create(ctx, booking); err != nil {
		return nil, &StageError{Stage: StageCreatingBooking, Message: "Failed to create booking", Err: err}
	}

	// CREATING_PARTICIPANTS, strictly in request order
	clients := make([]*entity.Client, 0, len(req.Participants))
	for i, participant := range req.Participants {
		client := participantToClient(&participant, booking.ID, now)
		if err := repos.Client.Create(ctx, client); err != nil {
			return nil, &StageError{
				Stage:   StageCreatingParticipants,
				Message: fmt.Sprintf("Failed to create participant %d", i+1),
				Err:     err,
			}
		}
		clients = append(clients, client)
	}

	// CREATING_ASSIGNMENTS
	switch booking.BookingType {
	case entity.BookingTypeRoom:
		if err := s.createRoomAssignments(ctx, repos, req, booking, clients, now); err != nil {
			return nil, err
		}
	case entity.BookingTypeSurfWeek:
		assignment := &entity.SurfCampAssignment{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			CampID:     req.CampID,
			BookingID:  booking.ID,
		}
		if err := repos.SurfCampAssignment.Create(ctx, assignment); err != nil {
			return nil, &StageError{Stage: StageCreatingAssignments, Message: err.Error(), Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_ref", booking.BookingRef),
		)
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_ref", booking.BookingRef),
		zap.String("booking_type", string(booking.BookingType)),
		zap.Int("participants", len(clients)),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	return &response.BookingCreatedResponse{
		BookingID:           booking.ID.String(),
		BookingType:         string(booking.BookingType),
		ParticipantsCreated: len(clients),
		Status:              string(booking.Status),
	}, nil
}

// createRoomAssignments writes one assignment per participant. When the
// room reference resolves to a managed room, the row is locked and occupancy
// rechecked inside the transaction; concurrent bookings for the same dates
// serialize on that lock instead of double-booking. External room references
// are inserted as-is.
func (s *bookingService) createRoomAssignments(
	ctx context.Context,
	repos *repository.Repository,
	req *request.CreateBookingRequest,
	booking *entity.Booking,
	clients []*entity.Client,
	now time.Time,
) error {
	// Dates already validated
	checkIn, _ := utils.ParseDate(req.StartDate)
	checkOut, _ := utils.ParseDate(req.EndDate)

	guests := req.Guests
	if guests < 1 {
		guests = len(clients)
	}

	if roomID, err := uuid.Parse(req.RoomID); err == nil {
		room, err := repos.Room.LockByID(ctx, roomID)
		if err != nil {
			return &StageError{Stage: StageCreatingAssignments, Message: err.Error(), Err: err}
		}
		if room != nil {
			occupied, err := repos.RoomAssignment.CountOverlappingGuests(ctx, req.RoomID, checkIn, checkOut)
			if err != nil {
				return &StageError{Stage: StageCreatingAssignments, Message: err.Error(), Err: err}
			}

			conflict := false
			switch room.BookingType {
			case entity.RoomBookingPerBed:
				conflict = room.Capacity-occupied < guests
			default:
				conflict = occupied > 0
			}
			if conflict {
				err := fmt.Errorf("room %s is not available for the selected dates", req.RoomID)
				return &StageError{Stage: StageCreatingAssignments, Message: err.Error(), Err: err}
			}
		}
	}

	for _, client := range clients {
		clientID := client.ID
		assignment := &entity.RoomAssignment{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			RoomID:     req.RoomID,
			BookingID:  booking.ID,
			ClientID:   &clientID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Guests:     1,
		}
		if err := repos.RoomAssignment.Create(ctx, assignment); err != nil {
			return &StageError{Stage: StageCreatingAssignments, Message: err.Error(), Err: err}
		}
	}

	return nil
}

// resolvePricing stores a client-computed pricing object as-is, or quotes
// the booking with the pricing engine when none was sent.
func (s *bookingService) resolvePricing(ctx context.Context, repos *repository.Repository, req *request.CreateBookingRequest) (float64, *entity.PriceBreakdown, error) {
	if req.Pricing != nil {
		return req.Pricing.Total, &entity.PriceBreakdown{
			Subtotal: req.Pricing.Breakdown["subtotal"],
			Taxes:    req.Pricing.Breakdown["taxes"],
			Fees:     req.Pricing.Breakdown["fees"],
			Discount: req.Pricing.Breakdown["discount"],
			Total:    req.Pricing.Total,
		}, nil
	}

	var items []pricing.Quote

	switch req.BookingType {
	case "room":
		room := &entity.Room{}
		if roomID, err := uuid.Parse(req.RoomID); err == nil {
			if found, err := repos.Room.FindByID(ctx, roomID); err == nil && found != nil {
				room = found
			}
		}
		checkIn, _ := utils.ParseDate(req.StartDate)
		checkOut, _ := utils.ParseDate(req.EndDate)
		occupancy := req.Guests
		if occupancy < 1 {
			occupancy = len(req.Participants)
		}
		items = append(items, pricing.ForRoom(room, &checkIn, &checkOut, occupancy, pricing.RateStandard))

	case "surf_week":
		camp := &entity.SurfCamp{}
		if campID, err := uuid.Parse(req.CampID); err == nil {
			if found, err := repos.SurfCamp.FindByID(ctx, campID); err == nil && found != nil {
				camp = found
			}
		}
		items = append(items, pricing.ForSurfCamp(camp, len(req.Participants)))
	}

	// Add-ons from the catalog are repriced at the catalog rate, which
	// also enforces their quantity cap. Opaque references keep the price
	// the submitter sent.
	for _, addOn := range req.AddOns {
		quantity := addOn.Quantity
		if quantity < 1 {
			quantity = 1
		}
		quote := pricing.Quote{
			UnitPrice:  addOn.Price,
			TotalPrice: addOn.Price * float64(quantity),
			Nights:     1,
		}
		if addOnID, err := uuid.Parse(addOn.ID); err == nil {
			if found, err := repos.AddOn.FindByID(ctx, addOnID); err == nil && found != nil {
				priced, err := pricing.ForAddOn(found, quantity)
				if err != nil {
					return 0, nil, NewValidationError(err.Error())
				}
				quote = priced
			}
		}
		items = append(items, quote)
	}

	breakdown := pricing.ComputeBreakdown(items, s.config.Pricing.TaxRate, s.config.Pricing.ServiceFeeRate, 0)
	return breakdown.Total, &entity.PriceBreakdown{
		Subtotal: breakdown.Subtotal,
		Taxes:    breakdown.Taxes,
		Fees:     breakdown.Fees,
		Discount: breakdown.Discount,
		Total:    breakdown.Total,
	}, nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)

	clients, err := s.repo.Client.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to load booking participants",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("load booking participants: %w", err)
	}
	for _, client := range clients {
		resp.Participants = append(resp.Participants, response.ClientToParticipant(client))
	}

	roomAssignments, _ := s.repo.RoomAssignment.FindByBookingID(ctx, booking.ID)
	for _, a := range roomAssignments {
		resp.Assignments = append(resp.Assignments, response.AssignmentResponse{
			RoomID:   a.RoomID,
			CheckIn:  a.CheckIn.Format(utils.DateLayout),
			CheckOut: a.CheckOut.Format(utils.DateLayout),
			Guests:   a.Guests,
		})
	}

	campAssignments, _ := s.repo.SurfCampAssignment.FindByBookingID(ctx, booking.ID)
	for _, a := range campAssignments {
		resp.Assignments = append(resp.Assignments, response.AssignmentResponse{CampID: a.CampID})
	}

	return &resp, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return NewValidationError(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	newStatus := entity.BookingStatus(req.Status)

	// Cancellation is terminal
	if booking.Status == entity.BookingStatusCancelled && newStatus != entity.BookingStatusCancelled {
		return fmt.Errorf("cannot change status of a cancelled booking")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, newStatus); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
	)

	return nil
}

// ==================== HELPERS ====================

func participantToClient(participant *request.ParticipantRequest, bookingID uuid.UUID, now time.Time) *entity.Client {
	client := &entity.Client{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:             bookingID,
		FirstName:             participant.FirstName,
		LastName:              participant.LastName,
		Email:                 participant.Email,
		Phone:                 participant.Phone,
		EmergencyContactName:  participant.EmergencyContactName,
		EmergencyContactPhone: participant.EmergencyContactPhone,
		DietaryRestrictions:   participant.DietaryRestrictions,
		MedicalConditions:     participant.MedicalConditions,
	}

	if participant.DateOfBirth != nil {
		if dob, err := utils.ParseDate(*participant.DateOfBirth); err == nil {
			client.DateOfBirth = &dob
		}
	}
	if participant.SurfLevel != nil {
		level := entity.SurfLevel(*participant.SurfLevel)
		client.SurfLevel = &level
	}

	return client
}

func requestAddOns(addOns []request.BookingAddOnRequest) []entity.BookingAddOn {
	if len(addOns) == 0 {
		return nil
	}
	result := make([]entity.BookingAddOn, len(addOns))
	for i, addOn := range addOns {
		result[i] = entity.BookingAddOn{
			ID:       addOn.ID,
			Name:     addOn.Name,
			Price:    addOn.Price,
			Quantity: addOn.Quantity,
		}
	}
	return result
}
