package adaptor

import (
	"surfcamp-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking    *BookingHandler
	Room       *RoomHandler
	SurfCamp   *SurfCampHandler
	AddOn      *AddOnHandler
	Compliance *ComplianceHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:    NewBookingHandler(service.Booking, log),
		Room:       NewRoomHandler(service.Room, log),
		SurfCamp:   NewSurfCampHandler(service.SurfCamp, log),
		AddOn:      NewAddOnHandler(service.AddOn, log),
		Compliance: NewComplianceHandler(service.Compliance, log),
	}
}
