package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"surfcamp-booking/internal/data/repository"
	"surfcamp-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ComplianceService serves data-protection requests from the back office.
type ComplianceService interface {
	ExportClientData(ctx context.Context, email string) (*response.ClientExportResponse, error)
}

type complianceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewComplianceService(repo *repository.Repository, log *zap.Logger) ComplianceService {
	return &complianceService{
		repo: repo,
		log:  log.With(zap.String("service", "compliance")),
	}
}

// ExportClientData collects every client record stored under an email address
// together with the bookings those records belong to. The match is
// case-insensitive. An unknown email yields an empty export, not an error.
func (s *complianceService) ExportClientData(ctx context.Context, email string) (*response.ClientExportResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, NewValidationError("Missing required parameter: email")
	}

	clients, err := s.repo.Client.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to load client records", zap.Error(err))
		return nil, fmt.Errorf("load client records for export: %w", err)
	}

	export := &response.ClientExportResponse{
		Email:       email,
		ExportedAt:  time.Now().UTC(),
		RecordCount: len(clients),
		Records:     make([]response.ClientExportRecord, 0, len(clients)),
		Bookings:    []response.BookingResponse{},
	}

	seen := make(map[uuid.UUID]bool)
	bookingIDs := make([]uuid.UUID, 0, len(clients))
	for _, client := range clients {
		export.Records = append(export.Records, response.ClientToExportRecord(client))
		if !seen[client.BookingID] {
			seen[client.BookingID] = true
			bookingIDs = append(bookingIDs, client.BookingID)
		}
	}

	if len(bookingIDs) > 0 {
		bookings, err := s.repo.Booking.FindByIDs(ctx, bookingIDs)
		if err != nil {
			s.log.Error("Failed to load bookings for export", zap.Error(err))
			return nil, fmt.Errorf("load bookings for export: %w", err)
		}
		for _, booking := range bookings {
			export.Bookings = append(export.Bookings, response.BookingToResponse(booking))
		}
	}

	s.log.Info("Client data exported",
		zap.String("email", email),
		zap.Int("records", export.RecordCount),
		zap.Int("bookings", len(export.Bookings)),
	)

	return export, nil
}
