package dto

// ContactInquiryRequest is the payload posted by the contact and lesson forms.
type ContactInquiryRequest struct {
	Name          string `json:"name" validate:"required,max=120"`
	Email         string `json:"email" validate:"required,simpleemail,max=160"`
	Phone         string `json:"phone" validate:"required,ukphone,max=32"`
	Message       string `json:"message" validate:"required,max=5000"`
	ContactMethod string `json:"contactMethod" validate:"omitempty,max=60"`
	HearAbout     string `json:"hearAbout" validate:"omitempty,max=60"`
	PackageType   string `json:"packageType" validate:"omitempty,oneof=general single package_3 package_5"`
	StartDate     string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	SkillLevel    string `json:"skillLevel" validate:"omitempty,max=60"`
	Honeypot      string `json:"_note"`
}

// CustomBatInquiryRequest is the payload posted by the custom bat form.
type CustomBatInquiryRequest struct {
	Name             string `json:"name" validate:"required,max=120"`
	Email            string `json:"email" validate:"required,simpleemail,max=160"`
	Phone            string `json:"phone" validate:"required,ukphone,max=32"`
	Message          string `json:"message" validate:"required,max=5000"`
	ConsultationType string `json:"consultationType" validate:"omitempty,oneof=email phone in-person"`
	PlayingStyle     string `json:"playingStyle" validate:"omitempty,max=60"`
	Budget           string `json:"budget" validate:"omitempty,max=60"`
	Honeypot         string `json:"_note"`
}

// InquiryResponse acknowledges an inquiry that was handed to the mail provider.
type InquiryResponse struct {
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
}

// CheckoutSessionResponse is returned by the checkout endpoint.
type CheckoutSessionResponse struct {
	SessionID *string `json:"session_id"`
}

// WebhookAck acknowledges a payment provider webhook delivery.
type WebhookAck struct {
	Received bool `json:"received"`
}

// PricingPackageResponse is a single row of the pricing table.
type PricingPackageResponse struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Lessons     int      `json:"lessons"`
	Price       int      `json:"price"`
	ListPrice   int      `json:"list_price"`
	Savings     int      `json:"savings"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}
