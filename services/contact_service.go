package services

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/HSouheill/barrim_storefront/models"
)

const contactConfirmation = "Thank you for contacting us! We will get back to you soon."

// Mailer sends the acknowledgement e-mail after a successful contact
// submission.
type Mailer interface {
	SendContactAcknowledgement(submission models.ContactSubmission) error
}

// ContactService submits the contact form and fronts the admin inbox.
type ContactService struct {
	api      *APIClient
	validate *validator.Validate
	mailer   Mailer
	logger   zerolog.Logger
}

// NewContactService builds the service. mailer may be nil when SMTP is not
// configured.
func NewContactService(api *APIClient, validate *validator.Validate, mailer Mailer, logger zerolog.Logger) *ContactService {
	return &ContactService{
		api:      api,
		validate: validate,
		mailer:   mailer,
		logger:   logger.With().Str("component", "contact").Logger(),
	}
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func normalize(s models.ContactSubmission) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate checks the required fields. It never touches the network.
func (s *ContactService) Validate(submission models.ContactSubmission) error {
	err := s.validate.Struct(normalize(submission))
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// Submit validates the form and sends it in a single request. The returned
// message is the confirmation to show the shopper.
func (s *ContactService) Submit(ctx context.Context, submission models.ContactSubmission) (string, error) {
	if err := s.Validate(submission); err != nil {
		return "", err
	}
	submission = normalize(submission)

	if _, err := s.api.SubmitContact(ctx, submission); err != nil {
		s.logger.Warn().Err(err).Str("kind", string(Classify(err))).Msg("contact submission failed")
		return "", err
	}

	if s.mailer != nil {
		if err := s.mailer.SendContactAcknowledgement(submission); err != nil {
			s.logger.Warn().Err(err).Msg("failed to send contact acknowledgement")
		}
	}
	return contactConfirmation, nil
}

func (s *ContactService) List(ctx context.Context, opts models.ContactListOptions) (*models.ContactList, error) {
	return s.api.AdminContacts(ctx, opts)
}

func (s *ContactService) Get(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.api.AdminContact(ctx, id)
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: []string{"status"}}
	}
	return s.api.UpdateContactStatus(ctx, id, status)
}

func (s *ContactService) Reply(ctx context.Context, id, message string) (*models.ContactMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &ValidationError{Fields: []string{"message"}}
	}
	return s.api.ReplyContact(ctx, id, message)
}
