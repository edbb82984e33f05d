package entity

import (
	"time"

	"github.com/google/uuid"
)

type SurfLevel string

const (
	SurfLevelBeginner     SurfLevel = "beginner"
	SurfLevelIntermediate SurfLevel = "intermediate"
	SurfLevelAdvanced     SurfLevel = "advanced"
	SurfLevelExpert       SurfLevel = "expert"
)

// Client is a persisted booking participant. Rows are created with their
// booking but stay independently addressable afterwards (GDPR export).
type Client struct {
	Base
	BookingID             uuid.UUID  `db:"booking_id"`
	FirstName             string     `db:"first_name"`
	LastName              string     `db:"last_name"`
	Email                 string     `db:"email"`
	Phone                 string     `db:"phone"`
	DateOfBirth           *time.Time `db:"date_of_birth"`
	EmergencyContactName  *string    `db:"emergency_contact_name"`
	EmergencyContactPhone *string    `db:"emergency_contact_phone"`
	DietaryRestrictions   *string    `db:"dietary_restrictions"`
	MedicalConditions     *string    `db:"medical_conditions"`
	SurfLevel             *SurfLevel `db:"surf_level"`
}
