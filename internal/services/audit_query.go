package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type ArchiveBrowser interface {
	List(ctx context.Context, source models.SourceCollection, limit, offset int64) ([]models.ArchiveRecord, error)
	FindByOriginal(ctx context.Context, source models.SourceCollection, originalID primitive.ObjectID) ([]models.ArchiveRecord, error)
}

type LogBrowser interface {
	List(ctx context.Context, severity models.Severity, limit, offset int64) ([]models.LogEntry, error)
}

// AuditQueryService serves the admin read side of the audit trail. Writes go
// through AuditService.
type AuditQueryService struct {
	archives ArchiveBrowser
	logs     LogBrowser
}

func NewAuditQueryService(archives ArchiveBrowser, logs LogBrowser) *AuditQueryService {
	return &AuditQueryService{archives: archives, logs: logs}
}

func (s *AuditQueryService) ListArchives(ctx context.Context, source string, limit, offset int64) ([]models.ArchiveRecord, error) {
	src := models.SourceCollection(source)
	if source != "" && !src.IsValid() {
		return nil, models.ErrValidation
	}
	return s.archives.List(ctx, src, limit, offset)
}

func (s *AuditQueryService) ArchiveHistory(ctx context.Context, source, originalID string) ([]models.ArchiveRecord, error) {
	src := models.SourceCollection(source)
	if !src.IsValid() {
		return nil, models.ErrValidation
	}
	objID, err := primitive.ObjectIDFromHex(originalID)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.archives.FindByOriginal(ctx, src, objID)
}

func (s *AuditQueryService) ListLogs(ctx context.Context, severity string, limit, offset int64) ([]models.LogEntry, error) {
	sev := models.Severity(severity)
	if severity != "" && !sev.IsValid() {
		return nil, models.ErrValidation
	}
	return s.logs.List(ctx, sev, limit, offset)
}
