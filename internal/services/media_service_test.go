package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type fakeMediaRepo struct {
	gallery  *models.Gallery
	document *models.Document
	deleted  []string
}

func (f *fakeMediaRepo) CreateGallery(context.Context, *models.Gallery) error { return nil }
func (f *fakeMediaRepo) GetGalleryByID(context.Context, primitive.ObjectID) (*models.Gallery, error) {
	if f.gallery == nil {
		return nil, models.ErrNotFound
	}
	return f.gallery, nil
}
func (f *fakeMediaRepo) GetGalleries(context.Context) ([]models.Gallery, error) { return nil, nil }
func (f *fakeMediaRepo) AddGalleryImage(context.Context, primitive.ObjectID, models.GalleryImage) error {
	return nil
}
func (f *fakeMediaRepo) DeleteGallery(context.Context, primitive.ObjectID) error {
	f.deleted = append(f.deleted, "gallery")
	return nil
}
func (f *fakeMediaRepo) CreateDocument(context.Context, *models.Document) error { return nil }
func (f *fakeMediaRepo) GetDocumentByID(context.Context, primitive.ObjectID) (*models.Document, error) {
	if f.document == nil {
		return nil, models.ErrNotFound
	}
	return f.document, nil
}
func (f *fakeMediaRepo) GetDocuments(context.Context) ([]models.Document, error) { return nil, nil }
func (f *fakeMediaRepo) DeleteDocument(context.Context, primitive.ObjectID) error {
	f.deleted = append(f.deleted, "document")
	return nil
}
func (f *fakeMediaRepo) CreateHighlight(context.Context, *models.Highlight) error { return nil }
func (f *fakeMediaRepo) GetHighlights(context.Context) ([]models.Highlight, error) {
	return nil, nil
}
func (f *fakeMediaRepo) DeleteHighlight(context.Context, primitive.ObjectID) error { return nil }

type fakeObjectStore struct {
	removed   []string
	removeErr error
}

func (f *fakeObjectStore) PutObject(_ context.Context, _, objectName string, _ io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	return minio.UploadInfo{Key: objectName}, nil
}

func (f *fakeObjectStore) RemoveObject(_ context.Context, _, objectName string, _ minio.RemoveObjectOptions) error {
	f.removed = append(f.removed, objectName)
	return f.removeErr
}

func TestDeleteGallery_CleansUpStoredObjects(t *testing.T) {
	repo := &fakeMediaRepo{gallery: &models.Gallery{
		ID: primitive.NewObjectID(),
		Images: []models.GalleryImage{
			{ObjectKey: "galleries/a/1_one.jpg"},
			{ObjectKey: "galleries/a/2_two.jpg"},
		},
	}}
	store := &fakeObjectStore{}
	svc := NewMediaService(repo, store, "club-media", "http://localhost:9000")

	err := svc.DeleteGallery(context.Background(), repo.gallery.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, []string{"gallery"}, repo.deleted)
	assert.Equal(t, []string{"galleries/a/1_one.jpg", "galleries/a/2_two.jpg"}, store.removed)
}

func TestDeleteGallery_ObjectCleanupFailureIsNotFatal(t *testing.T) {
	repo := &fakeMediaRepo{gallery: &models.Gallery{
		ID:     primitive.NewObjectID(),
		Images: []models.GalleryImage{{ObjectKey: "galleries/a/1_one.jpg"}},
	}}
	store := &fakeObjectStore{removeErr: errors.New("store down")}
	svc := NewMediaService(repo, store, "club-media", "http://localhost:9000")

	err := svc.DeleteGallery(context.Background(), repo.gallery.ID.Hex())

	// The record is gone; the orphaned object is a logged cleanup miss.
	require.NoError(t, err)
	assert.Equal(t, []string{"gallery"}, repo.deleted)
	assert.Len(t, store.removed, 1)
}

func TestDeleteDocument_CleansUpStoredObject(t *testing.T) {
	repo := &fakeMediaRepo{document: &models.Document{
		ID:        primitive.NewObjectID(),
		ObjectKey: "documents/1_report.pdf",
	}}
	store := &fakeObjectStore{}
	svc := NewMediaService(repo, store, "club-media", "http://localhost:9000")

	err := svc.DeleteDocument(context.Background(), repo.document.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, []string{"document"}, repo.deleted)
	assert.Equal(t, []string{"documents/1_report.pdf"}, store.removed)
}
