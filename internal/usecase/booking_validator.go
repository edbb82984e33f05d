package usecase

import (
	"fmt"
	"strings"

	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/pkg/utils"
)

// Fixed validation messages. Public API contract; do not reword.
const (
	errMissingCoreFields    = "Missing required fields: booking_type and participants"
	errMissingCampField     = "Missing required field for surf week booking: camp_id"
	errMissingRoomFieldsFmt = "Missing required fields for room booking: %s"
	errInvalidDateFormat    = "Invalid date format: start_date and end_date must be YYYY-MM-DD"
	errInvalidDateRange     = "Invalid date range: end_date must be after start_date"
)

// validateBookingRequest checks request shape before anything is persisted.
// An unknown booking_type is reported with the missing-fields message, same
// as an absent one; callers depend on that exact string.
func validateBookingRequest(req *request.CreateBookingRequest) *ValidationError {
	bookingType := req.BookingType
	if bookingType != "room" && bookingType != "surf_week" {
		bookingType = ""
	}

	if bookingType == "" || len(req.Participants) == 0 {
		return NewValidationError(errMissingCoreFields)
	}

	switch bookingType {
	case "room":
		var missing []string
		if req.RoomID == "" {
			missing = append(missing, "room_id")
		}
		if req.StartDate == "" {
			missing = append(missing, "start_date")
		}
		if req.EndDate == "" {
			missing = append(missing, "end_date")
		}
		if len(missing) > 0 {
			return NewValidationError(fmt.Sprintf(errMissingRoomFieldsFmt, strings.Join(missing, ", ")))
		}

		start, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return NewValidationError(errInvalidDateFormat)
		}
		end, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return NewValidationError(errInvalidDateFormat)
		}
		if !end.After(start) {
			return NewValidationError(errInvalidDateRange)
		}

	case "surf_week":
		if req.CampID == "" {
			return NewValidationError(errMissingCampField)
		}
	}

	for i, participant := range req.Participants {
		if errs := utils.ValidateStruct(participant); len(errs) > 0 {
			return NewValidationError(fmt.Sprintf("Invalid participant %d: %s", i+1, utils.FormatValidationErrors(errs)))
		}
	}

	return nil
}
