package usecase

import (
	"surfcamp-booking/internal/data/repository"
	"surfcamp-booking/pkg/database"
	"surfcamp-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking    BookingService
	Room       RoomService
	SurfCamp   SurfCampService
	AddOn      AddOnService
	Compliance ComplianceService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking:    NewBookingService(db, repo, config, log),
		Room:       NewRoomService(repo, log),
		SurfCamp:   NewSurfCampService(repo, log),
		AddOn:      NewAddOnService(repo, log),
		Compliance: NewComplianceService(repo, log),
	}
}
