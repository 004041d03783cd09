package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"landing-forms/pkg/clients/supabase"
	"landing-forms/pkg/models"
)

const (
	ContactSubmissionsTable = "contact_submissions"
	NewsletterSignupsTable  = "newsletter_signups"

	// MockID is the identifier given to rows saved while Supabase is not configured
	MockID = "mock-id"

	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// FormService defines the interface for persisting landing page forms
type FormService interface {
	SaveContactSubmission(ctx context.Context, input models.ContactSubmissionInput) (*models.ContactSubmission, error)
	SaveNewsletterSignup(ctx context.Context, email string) (*models.NewsletterSignup, error)
}

type formServiceImpl struct {
	client     supabase.Client
	configured bool
	logger     logrus.FieldLogger
	now        func() time.Time
}

// NewFormService creates a new form service. Given the unconfigured client
// the service never calls it and returns mock rows instead.
func NewFormService(client supabase.Client, logger logrus.FieldLogger) FormService {
	return &formServiceImpl{
		client:     client,
		configured: supabase.IsConfigured(client),
		logger:     logger.WithField("component", "form-service"),
		now:        time.Now,
	}
}

// SaveContactSubmission stores one contact form submission
func (s *formServiceImpl) SaveContactSubmission(ctx context.Context, input models.ContactSubmissionInput) (*models.ContactSubmission, error) {
	if !s.configured {
		s.logger.WithField("submission", input).Info("Contact form submission (Supabase not configured)")
		return &models.ContactSubmission{
			ID:        MockID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
			Message:   input.Message,
			CreatedAt: s.timestamp(),
		}, nil
	}

	var result models.ContactSubmission
	if err := s.client.InsertOne(ctx, ContactSubmissionsTable, input, &result); err != nil {
		s.logger.WithError(err).Error("Error saving contact submission")
		return nil, err
	}

	return &result, nil
}

// SaveNewsletterSignup stores one newsletter signup
func (s *formServiceImpl) SaveNewsletterSignup(ctx context.Context, email string) (*models.NewsletterSignup, error) {
	if !s.configured {
		s.logger.WithField("email", email).Info("Newsletter signup (Supabase not configured)")
		return &models.NewsletterSignup{
			ID:        MockID,
			Email:     email,
			CreatedAt: s.timestamp(),
		}, nil
	}

	var result models.NewsletterSignup
	if err := s.client.InsertOne(ctx, NewsletterSignupsTable, models.NewsletterSignupInput{Email: email}, &result); err != nil {
		s.logger.WithError(err).Error("Error saving newsletter signup")
		return nil, err
	}

	return &result, nil
}

func (s *formServiceImpl) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}
