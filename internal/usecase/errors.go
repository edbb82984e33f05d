package usecase

// BookingStage names the step of the booking creation sequence a failure
// happened in.
type BookingStage string

const (
	StageValidating           BookingStage = "validating"
	StageCreatingBooking      BookingStage = "creating_booking"
	StageCreatingParticipants BookingStage = "creating_participants"
	StageCreatingAssignments  BookingStage = "creating_assignments"
)

// ValidationError is a malformed or incomplete request. Handlers answer 400
// with the message verbatim; nothing was persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// StageError is a persistence failure inside the creation sequence. Message
// is the contract string for the stage (or the underlying error text where
// the contract propagates it verbatim); handlers answer 500 with it.
type StageError struct {
	Stage   BookingStage
	Message string
	Err     error
}

func (e *StageError) Error() string {
	return e.Message
}

func (e *StageError) Unwrap() error {
	return e.Err
}
