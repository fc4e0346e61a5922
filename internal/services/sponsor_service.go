package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type SponsorRepository interface {
	Create(ctx context.Context, s *models.Sponsor) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error)
	GetAll(ctx context.Context) ([]models.Sponsor, error)
	Update(ctx context.Context, s *models.Sponsor) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CreateDonation(ctx context.Context, d *models.Donation) error
	GetDonations(ctx context.Context, sponsorID primitive.ObjectID) ([]models.Donation, error)
}

type SponsorService struct {
	repo   SponsorRepository
	mailer Mailer
}

func NewSponsorService(repo SponsorRepository, mailer Mailer) *SponsorService {
	return &SponsorService{repo: repo, mailer: mailer}
}

func (s *SponsorService) Create(ctx context.Context, sponsor *models.Sponsor) error {
	if err := validateModel(sponsor); err != nil {
		return err
	}
	return s.repo.Create(ctx, sponsor)
}

func (s *SponsorService) GetByID(ctx context.Context, id string) (*models.Sponsor, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *SponsorService) GetAll(ctx context.Context) ([]models.Sponsor, error) {
	return s.repo.GetAll(ctx)
}

func (s *SponsorService) Update(ctx context.Context, sponsor *models.Sponsor) error {
	if sponsor.ID.IsZero() {
		return models.ErrInvalidID
	}
	if err := validateModel(sponsor); err != nil {
		return err
	}
	return s.repo.Update(ctx, sponsor)
}

func (s *SponsorService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}

// RecordDonation stores the donation and sends a receipt when the sponsor
// has an email on file. Mail failure only gets logged; the donation is
// already recorded.
func (s *SponsorService) RecordDonation(ctx context.Context, d *models.Donation) error {
	if err := validateModel(d); err != nil {
		return err
	}

	sponsor, err := s.repo.GetByID(ctx, d.SponsorID)
	if err != nil {
		return err
	}
	if d.Currency == "" {
		d.Currency = "USD"
	}

	if err := s.repo.CreateDonation(ctx, d); err != nil {
		return err
	}

	if s.mailer != nil && sponsor.Email != "" {
		if err := s.mailer.SendDonationReceipt(sponsor.Email, sponsor.Name, d.Amount, d.Currency); err != nil {
			log.Printf("[MAIL] Failed to send donation receipt to %s: %v", sponsor.Email, err)
		}
	}
	return nil
}

func (s *SponsorService) GetDonations(ctx context.Context, sponsorID string) ([]models.Donation, error) {
	objID, err := primitive.ObjectIDFromHex(sponsorID)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetDonations(ctx, objID)
}
