package letter

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
)

//go:embed templates/*.txt
var templateFS embed.FS

// templateCatalog fixes the display order of the available templates
var templateCatalog = []model.LetterTemplateInfo{
	{ID: "urgent-appointment", Name: "Urgent Skin Lesion Assessment", Category: "urgent"},
	{ID: "routine-appointment", Name: "Routine Appointment Notification", Category: "routine"},
	{ID: "information-request", Name: "Additional Information Required", Category: "routine"},
}

// ErrTemplateNotFound is returned when a letter is requested for an unknown
// template ID
var ErrTemplateNotFound = goerr.New("letter template not found")

// ErrMissingPatient is returned when the addressee fields are incomplete
var ErrMissingPatient = goerr.New("patient surname is required")

type letterData struct {
	Patient       model.PatientData
	Appointment   model.AppointmentDetails
	Extra         map[string]string
	Reference     string
	GeneratedDate string
}

// Service renders patient letters from the embedded template set
type Service struct {
	templates *template.Template
	now       func() time.Time
}

// New parses the embedded letter templates
func New() (*Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse letter templates")
	}

	return &Service{
		templates: tmpl,
		now:       time.Now,
	}, nil
}

// Templates lists the available letter templates
func (s *Service) Templates() []model.LetterTemplateInfo {
	out := make([]model.LetterTemplateInfo, len(templateCatalog))
	copy(out, templateCatalog)
	return out
}

// Generate renders the given template with the patient and appointment data.
// Extra carries template-specific fields such as the requested information
// list for the information-request letter.
func (s *Service) Generate(templateID string, patient model.PatientData, appointment model.AppointmentDetails, extra map[string]string) (*model.Letter, error) {
	if !s.knownTemplate(templateID) {
		return nil, goerr.Wrap(ErrTemplateNotFound, "cannot generate letter", goerr.V("template_id", templateID))
	}
	if strings.TrimSpace(patient.Surname) == "" {
		return nil, goerr.Wrap(ErrMissingPatient, "cannot generate letter", goerr.V("template_id", templateID))
	}

	generatedAt := s.now()
	data := letterData{
		Patient:       patient,
		Appointment:   appointment,
		Extra:         extra,
		Reference:     newReference(generatedAt),
		GeneratedDate: generatedAt.Format("02/01/2006"),
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateID+".txt", data); err != nil {
		return nil, goerr.Wrap(err, "failed to render letter", goerr.V("template_id", templateID))
	}

	return &model.Letter{
		TemplateID:  templateID,
		Reference:   data.Reference,
		Content:     buf.String(),
		GeneratedAt: generatedAt,
	}, nil
}

// Preview renders the given template with fixed sample data for on-screen
// review before any real patient details are entered
func (s *Service) Preview(templateID string, category string) (*model.Letter, error) {
	patient := model.PatientData{
		FullName:     "John Michael Smith",
		Title:        "Mr",
		Surname:      "Smith",
		AddressLine1: "123 Example Street",
		AddressLine2: "Example District",
		Postcode:     "EH1 2AB",
		NHSNumber:    "123 456 7890",
		DateOfBirth:  "15/03/1975",
		GPPractice:   "Example Medical Centre",
	}

	appointment := model.AppointmentDetails{
		Date:           s.now().AddDate(0, 0, 7).Format("02/01/2006"),
		Time:           "2:30 PM",
		Location:       "Royal Infirmary of Edinburgh, Plastic Surgery Unit, Level 3",
		ClinicName:     "General Plastic Surgery Clinic",
		ConsultantName: "Mr. James Richardson",
		Department:     "Plastic Surgery",
		ContactPhone:   "0131 536 1000",
		ContactEmail:   "plastic.surgery@nhslothian.scot.nhs.uk",
	}
	if category == "urgent" {
		appointment.Time = "09:30 AM"
		appointment.ClinicName = "See and Treat Skin Lesion Clinic"
	}

	extra := map[string]string{
		"AdditionalInfoRequired": "Recent photographs of the lesion and a current medication list",
	}

	return s.Generate(templateID, patient, appointment, extra)
}

func (s *Service) knownTemplate(id string) bool {
	for _, info := range templateCatalog {
		if info.ID == id {
			return true
		}
	}
	return false
}

// newReference derives the letter reference from the generation timestamp,
// keeping the last eight digits of the millisecond clock
func newReference(at time.Time) string {
	millis := fmt.Sprintf("%d", at.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "PLS-" + millis
}
