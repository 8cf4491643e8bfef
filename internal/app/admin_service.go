package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"birthday_notification_bot/internal/domain/admin"
	"birthday_notification_bot/internal/domain/birthday"
	"birthday_notification_bot/internal/domain/channel"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Application-level errors for the mutation command surface.
var (
	ErrNotAuthorized = errors.New("performing user is not authorized as an admin")
	ErrInvalidInput  = errors.New("invalid input")
)

type birthdayInput struct {
	ExternalID  string `validate:"required,max=100"`
	DisplayName string `validate:"min=1,max=100"`
	Month       int    `validate:"min=1,max=12"`
	Day         int    `validate:"min=1,max=31"`
}

type AdminService struct {
	adminRepo    admin.Repository
	birthdayRepo birthday.Repository
	channelRepo  channel.Repository
	validate     *validator.Validate
	logger       *logrus.Entry
}

func NewAdminService(ar admin.Repository, br birthday.Repository, cr channel.Repository, logger *logrus.Entry) *AdminService {
	return &AdminService{
		adminRepo:    ar,
		birthdayRepo: br,
		channelRepo:  cr,
		validate:     validator.New(),
		logger:       logger,
	}
}

// IsAdmin reports whether externalUserID has at least one admin row.
func (s *AdminService) IsAdmin(ctx context.Context, externalUserID string) (bool, error) {
	admins, err := s.adminRepo.GetAdmins(ctx, externalUserID)
	if err != nil {
		return false, fmt.Errorf("failed to look up admin %s: %w", externalUserID, err)
	}
	return len(admins) > 0, nil
}

func (s *AdminService) authorize(ctx context.Context, performingUserID string) error {
	ok, err := s.IsAdmin(ctx, performingUserID)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.WithField("sender_id", performingUserID).Warn("Unauthorized mutation attempt")
		return ErrNotAuthorized
	}
	return nil
}

// AddBirthday stores a new entry on behalf of an admin. An entry that already exists
// for the same external ID is left unchanged.
func (s *AdminService) AddBirthday(ctx context.Context, performingUserID string, b *birthday.Birthday) error {
	if err := s.authorize(ctx, performingUserID); err != nil {
		return err
	}
	if err := s.storeBirthday(ctx, b); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"sender_id":   performingUserID,
		"external_id": b.ExternalID,
		"month":       b.Month,
		"day":         b.Day,
	}).Info("Birthday added")
	return nil
}

// ImportBirthday validates and stores b for a trusted internal caller.
func (s *AdminService) ImportBirthday(ctx context.Context, b *birthday.Birthday) error {
	return s.storeBirthday(ctx, b)
}

func (s *AdminService) storeBirthday(ctx context.Context, b *birthday.Birthday) error {
	b.DisplayName = strings.TrimSpace(b.DisplayName)
	in := birthdayInput{ExternalID: b.ExternalID, DisplayName: b.DisplayName, Month: b.Month, Day: b.Day}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.birthdayRepo.Upsert(ctx, b); err != nil {
		return fmt.Errorf("failed to store birthday: %w", err)
	}
	return nil
}

func (s *AdminService) DeleteBirthday(ctx context.Context, performingUserID string, externalID string) error {
	if err := s.authorize(ctx, performingUserID); err != nil {
		return err
	}
	if strings.TrimSpace(externalID) == "" {
		return fmt.Errorf("%w: empty external id", ErrInvalidInput)
	}

	if err := s.birthdayRepo.Delete(ctx, externalID); err != nil {
		return fmt.Errorf("failed to delete birthday: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"sender_id": performingUserID, "external_id": externalID}).Info("Birthday deleted")
	return nil
}

// SetChannel binds key to destinationID on behalf of an admin.
func (s *AdminService) SetChannel(ctx context.Context, performingUserID string, key channel.Key, destinationID string) error {
	if err := s.authorize(ctx, performingUserID); err != nil {
		return err
	}
	if err := s.BindChannel(ctx, key, destinationID); err != nil {
		return err
	}
	s.logger.WithField("sender_id", performingUserID).Debug("Channel bound by admin")
	return nil
}

// BindChannel binds key to destinationID for a trusted internal caller.
func (s *AdminService) BindChannel(ctx context.Context, key channel.Key, destinationID string) error {
	if destinationID == "" {
		return fmt.Errorf("%w: empty destination", ErrInvalidInput)
	}
	if err := s.channelRepo.Set(ctx, key, destinationID); err != nil {
		return fmt.Errorf("failed to set channel %s: %w", key, err)
	}
	s.logger.WithFields(logrus.Fields{"channel_key": key, "destination_id": destinationID}).Info("Channel bound")
	return nil
}

// SeedAdmins registers the configured admins. It is a trusted internal call and performs no authorization.
func (s *AdminService) SeedAdmins(ctx context.Context, externalUserIDs []string) error {
	for _, id := range externalUserIDs {
		if err := s.adminRepo.Add(ctx, id); err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", id, err)
		}
	}
	if len(externalUserIDs) > 0 {
		s.logger.WithField("count", len(externalUserIDs)).Info("Configured admins seeded")
	}
	return nil
}

func (s *AdminService) RemoveAdmin(ctx context.Context, externalUserID string) error {
	if err := s.adminRepo.Remove(ctx, externalUserID); err != nil {
		return fmt.Errorf("failed to remove admin %s: %w", externalUserID, err)
	}
	s.logger.WithField("admin_id", externalUserID).Info("Admin removed")
	return nil
}
