package model

import "time"

// PatientData carries the addressee fields for a generated letter.
// Identifiable fields are tagged for log redaction.
type PatientData struct {
	FullName     string `json:"full_name"`
	Title        string `json:"title"`
	Surname      string `json:"surname"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	Postcode     string `json:"postcode"`
	NHSNumber    string `json:"nhs_number" masq:"secret"`
	DateOfBirth  string `json:"date_of_birth,omitempty" masq:"secret"`
	GPPractice   string `json:"gp_practice,omitempty"`
}

// AppointmentDetails carries the clinic fields for a generated letter
type AppointmentDetails struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	ClinicName     string `json:"clinic_name"`
	ConsultantName string `json:"consultant_name"`
	Department     string `json:"department"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
}

// Letter is a rendered patient letter
type Letter struct {
	TemplateID  string    `json:"template_id"`
	Reference   string    `json:"reference"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

// LetterTemplateInfo describes an available letter template
type LetterTemplateInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
