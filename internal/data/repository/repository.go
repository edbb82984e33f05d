package repository

import (
	"surfcamp-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room               RoomRepository
	Booking            BookingRepository
	Client             ClientRepository
	RoomAssignment     RoomAssignmentRepository
	SurfCamp           SurfCampRepository
	SurfCampAssignment SurfCampAssignmentRepository
	AddOn              AddOnRepository

	log *zap.Logger
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Room:               NewRoomRepository(db, log),
		Booking:            NewBookingRepository(db, log),
		Client:             NewClientRepository(db, log),
		RoomAssignment:     NewRoomAssignmentRepository(db, log),
		SurfCamp:           NewSurfCampRepository(db, log),
		SurfCampAssignment: NewSurfCampAssignmentRepository(db, log),
		AddOn:              NewAddOnRepository(db, log),

		log: log,
	}
}

// WithTx rebinds every repository to the given transaction. The booking
// orchestrator uses this to run its whole write sequence atomically.
func (r *Repository) WithTx(tx database.Querier) *Repository {
	return NewRepository(tx, r.log)
}
