package models

import "github.com/pingability/pingability-api/internal/pricing"

// InquiryKind distinguishes the forms a submission can come from.
type InquiryKind string

const (
	InquiryKindContact   InquiryKind = "contact"
	InquiryKindCustomBat InquiryKind = "custom_bat"
)

// Contact holds the submitter's details shared by every inquiry.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// ContactInquiry is a normalized coaching or lesson enquiry.
type ContactInquiry struct {
	ReferenceID   string
	Contact       Contact
	Message       string
	ContactMethod string
	HearAbout     string
	PackageType   pricing.PackageType
	StartDate     string
	SkillLevel    string
}

// CustomBatInquiry is a normalized custom bat consultation request.
type CustomBatInquiry struct {
	ReferenceID      string
	Contact          Contact
	Message          string
	ConsultationType string
	PlayingStyle     string
	Budget           string
}
