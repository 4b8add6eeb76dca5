package models

// LessonType is the coaching format of a booking.
type LessonType string

const (
	LessonTypeIndividual LessonType = "individual"
	LessonTypeGroup      LessonType = "group"
)

// Booking describes a paid lesson booking. Only the email templates consume it
// while online payment is switched off.
type Booking struct {
	ID           string
	Customer     Contact
	LessonType   LessonType
	SessionCount int
	TotalAmount  float64
}
