package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type MediaRepository interface {
	CreateGallery(ctx context.Context, g *models.Gallery) error
	GetGalleryByID(ctx context.Context, id primitive.ObjectID) (*models.Gallery, error)
	GetGalleries(ctx context.Context) ([]models.Gallery, error)
	AddGalleryImage(ctx context.Context, galleryID primitive.ObjectID, img models.GalleryImage) error
	DeleteGallery(ctx context.Context, id primitive.ObjectID) error
	CreateDocument(ctx context.Context, d *models.Document) error
	GetDocumentByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error)
	GetDocuments(ctx context.Context) ([]models.Document, error)
	DeleteDocument(ctx context.Context, id primitive.ObjectID) error
	CreateHighlight(ctx context.Context, h *models.Highlight) error
	GetHighlights(ctx context.Context) ([]models.Highlight, error)
	DeleteHighlight(ctx context.Context, id primitive.ObjectID) error
}

// ObjectStore is the slice of the minio client the media service uses.
type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type MediaService struct {
	repo      MediaRepository
	store     ObjectStore
	bucket    string
	publicURL string
}

func NewMediaService(repo MediaRepository, store ObjectStore, bucket, publicURL string) *MediaService {
	return &MediaService{repo: repo, store: store, bucket: bucket, publicURL: publicURL}
}

func (s *MediaService) CreateGallery(ctx context.Context, g *models.Gallery) error {
	if err := validateModel(g); err != nil {
		return err
	}
	return s.repo.CreateGallery(ctx, g)
}

func (s *MediaService) GetGalleryByID(ctx context.Context, id string) (*models.Gallery, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetGalleryByID(ctx, objID)
}

func (s *MediaService) GetGalleries(ctx context.Context) ([]models.Gallery, error) {
	return s.repo.GetGalleries(ctx)
}

// UploadGalleryImage pushes the file to the object store and appends the
// resulting image entry onto the gallery.
func (s *MediaService) UploadGalleryImage(ctx context.Context, galleryID string, reader io.Reader, size int64, contentType, filename, caption string) (*models.GalleryImage, error) {
	objID, err := primitive.ObjectIDFromHex(galleryID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	objectKey := fmt.Sprintf("galleries/%s/%d_%s", galleryID, time.Now().UnixNano(), filename)
	_, err = s.store.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	img := models.GalleryImage{
		ObjectKey: objectKey,
		URL:       s.objectURL(objectKey),
		Caption:   caption,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddGalleryImage(ctx, objID, img); err != nil {
		return nil, err
	}
	return &img, nil
}

// DeleteGallery removes the gallery record and then cleans its images out of
// the object store. Cleanup is best-effort: a leftover object only gets
// logged, the gallery is already gone.
func (s *MediaService) DeleteGallery(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}

	gallery, err := s.repo.GetGalleryByID(ctx, objID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteGallery(ctx, objID); err != nil {
		return err
	}

	keys := make([]string, 0, len(gallery.Images))
	for _, img := range gallery.Images {
		keys = append(keys, img.ObjectKey)
	}
	s.removeObjects(ctx, keys...)
	return nil
}

func (s *MediaService) UploadDocument(ctx context.Context, title string, reader io.Reader, size int64, contentType, filename string) (*models.Document, error) {
	doc := &models.Document{Title: title, FileName: filename}
	if err := validateModel(doc); err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("documents/%d_%s", time.Now().UnixNano(), filename)
	_, err := s.store.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	doc.ObjectKey = objectKey
	doc.URL = s.objectURL(objectKey)
	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *MediaService) GetDocuments(ctx context.Context) ([]models.Document, error) {
	return s.repo.GetDocuments(ctx)
}

// DeleteDocument removes the record, then the stored file (best-effort, same
// contract as DeleteGallery).
func (s *MediaService) DeleteDocument(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}

	doc, err := s.repo.GetDocumentByID(ctx, objID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteDocument(ctx, objID); err != nil {
		return err
	}

	s.removeObjects(ctx, doc.ObjectKey)
	return nil
}

func (s *MediaService) CreateHighlight(ctx context.Context, h *models.Highlight) error {
	if err := validateModel(h); err != nil {
		return err
	}
	return s.repo.CreateHighlight(ctx, h)
}

func (s *MediaService) GetHighlights(ctx context.Context) ([]models.Highlight, error) {
	return s.repo.GetHighlights(ctx)
}

func (s *MediaService) DeleteHighlight(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.DeleteHighlight(ctx, objID)
}

func (s *MediaService) removeObjects(ctx context.Context, keys ...string) {
	if s.store == nil {
		return
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.store.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			log.Printf("[MEDIA] Failed to remove object %s: %v", key, err)
		}
	}
}

func (s *MediaService) objectURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.publicURL, "/"), s.bucket, objectKey)
}
