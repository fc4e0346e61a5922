package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type PlayerRepository interface {
	Create(ctx context.Context, p *models.Player) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Player, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.Player, error)
	Update(ctx context.Context, p *models.Player) error
	SetPhotoURL(ctx context.Context, id primitive.ObjectID, url string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PlayerService struct {
	repo      PlayerRepository
	minio     *minio.Client
	bucket    string
	publicURL string
}

func NewPlayerService(repo PlayerRepository, m *minio.Client, bucket, publicURL string) *PlayerService {
	return &PlayerService{repo: repo, minio: m, bucket: bucket, publicURL: publicURL}
}

func (s *PlayerService) Create(ctx context.Context, p *models.Player) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *PlayerService) GetByID(ctx context.Context, id string) (*models.Player, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *PlayerService) GetAll(ctx context.Context, activeOnly bool) ([]models.Player, error) {
	return s.repo.GetAll(ctx, activeOnly)
}

func (s *PlayerService) Update(ctx context.Context, p *models.Player) error {
	if p.ID.IsZero() {
		return models.ErrInvalidID
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *PlayerService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}

// UploadPhoto stores the image in the object store and saves the public URL
// on the player document.
func (s *PlayerService) UploadPhoto(ctx context.Context, id string, reader io.Reader, size int64, contentType, filename string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", models.ErrInvalidID
	}

	objectKey := fmt.Sprintf("players/%d_%s", time.Now().UnixNano(), filename)
	_, err = s.minio.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.publicURL, "/"), s.bucket, objectKey)
	if err := s.repo.SetPhotoURL(ctx, objID, url); err != nil {
		return "", err
	}
	return url, nil
}
