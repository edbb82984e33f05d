package response

import (
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/pkg/utils"
)

// ClientExportResponse is the GDPR export document: every personal record we
// hold for one email address plus the bookings those records belong to.
type ClientExportResponse struct {
	Email       string               `json:"email"`
	ExportedAt  time.Time            `json:"exported_at"`
	RecordCount int                  `json:"record_count"`
	Records     []ClientExportRecord `json:"records"`
	Bookings    []BookingResponse    `json:"bookings"`
}

type ClientExportRecord struct {
	ID                    string  `json:"id"`
	BookingID             string  `json:"booking_id"`
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	DietaryRestrictions   *string `json:"dietary_restrictions,omitempty"`
	MedicalConditions     *string `json:"medical_conditions,omitempty"`
	SurfLevel             *string `json:"surf_level,omitempty"`
	CreatedAt             string  `json:"created_at"`
}

func ClientToExportRecord(client *entity.Client) ClientExportRecord {
	record := ClientExportRecord{
		ID:                    client.ID.String(),
		BookingID:             client.BookingID.String(),
		FirstName:             client.FirstName,
		LastName:              client.LastName,
		Email:                 client.Email,
		Phone:                 client.Phone,
		EmergencyContactName:  client.EmergencyContactName,
		EmergencyContactPhone: client.EmergencyContactPhone,
		DietaryRestrictions:   client.DietaryRestrictions,
		MedicalConditions:     client.MedicalConditions,
		CreatedAt:             client.CreatedAt.Format(time.RFC3339),
	}
	if client.DateOfBirth != nil {
		dob := client.DateOfBirth.Format(utils.DateLayout)
		record.DateOfBirth = &dob
	}
	if client.SurfLevel != nil {
		level := string(*client.SurfLevel)
		record.SurfLevel = &level
	}
	return record
}
