package services

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type ArchiveStore interface {
	Create(ctx context.Context, rec *models.ArchiveRecord) error
}

type LogStore interface {
	Create(ctx context.Context, entry *models.LogEntry) error
}

// Outcome reports whether an archive or log write landed. Audit writes are
// advisory: failures are carried in the outcome value instead of a returned
// error, so a caller can never accidentally abort its primary mutation on
// them. Callers are free to ignore the value entirely.
type Outcome struct {
	Written bool
	Err     error
}

// RequestInfo is the transport metadata an HTTP handler passes along for log
// enrichment. It decouples the audit service from any request type.
type RequestInfo struct {
	IP        string
	UserAgent string
	Method    string
	URL       string
}

type LogParams struct {
	Title       string
	Description string
	Severity    models.Severity // empty defaults to INFO
	Actor       *models.ActorSnapshot
	Request     *RequestInfo
	Meta        map[string]string
}

type AuditService struct {
	archives ArchiveStore
	logs     LogStore
}

func NewAuditService(archives ArchiveStore, logs LogStore) *AuditService {
	return &AuditService{archives: archives, logs: logs}
}

// ArchiveBeforeMutate snapshots a document into the archive store before the
// caller deletes or overwrites it. The snapshot is best-effort: there is no
// transaction spanning the archive write and the primary mutation, and a
// failed write only surfaces through the returned Outcome.
func (s *AuditService) ArchiveBeforeMutate(ctx context.Context, doc interface{}, originalID primitive.ObjectID, source models.SourceCollection, reason string, actor *models.ActorSnapshot) Outcome {
	if !source.IsValid() {
		err := fmt.Errorf("unknown source collection %q", source)
		log.Printf("[AUDIT] Archive skipped: %v", err)
		return Outcome{Err: err}
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		log.Printf("[AUDIT] Failed to snapshot %s/%s: %v", source, originalID.Hex(), err)
		return Outcome{Err: err}
	}

	rec := &models.ArchiveRecord{
		Doc:              bson.Raw(raw),
		SourceCollection: source,
		OriginalID:       originalID,
		Reason:           reason,
		User:             actor,
	}

	if err := s.archives.Create(ctx, rec); err != nil {
		log.Printf("[AUDIT] Failed to archive %s/%s: %v", source, originalID.Hex(), err)
		return Outcome{Err: err}
	}

	return Outcome{Written: true}
}

// LogAction appends an audit log entry. The actor is captured as a snapshot
// and request metadata is merged into meta when present. Same advisory
// contract as ArchiveBeforeMutate: failure never propagates as an error, the
// entry is nil and the Outcome carries the reason.
func (s *AuditService) LogAction(ctx context.Context, p LogParams) (*models.LogEntry, Outcome) {
	severity := p.Severity
	if severity == "" {
		severity = models.SeverityInfo
	}
	if !severity.IsValid() {
		err := fmt.Errorf("unknown severity %q", p.Severity)
		log.Printf("[AUDIT] Log skipped: %v", err)
		return nil, Outcome{Err: err}
	}

	meta := make(map[string]string, len(p.Meta)+4)
	for k, v := range p.Meta {
		meta[k] = v
	}
	if p.Request != nil {
		meta["ip"] = p.Request.IP
		meta["user_agent"] = p.Request.UserAgent
		meta["method"] = p.Request.Method
		meta["url"] = p.Request.URL
	}
	if len(meta) == 0 {
		meta = nil
	}

	entry := &models.LogEntry{
		Title:       p.Title,
		Description: p.Description,
		Severity:    severity,
		User:        p.Actor,
		Meta:        meta,
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		log.Printf("[AUDIT] Failed to write log entry %q: %v", p.Title, err)
		return nil, Outcome{Err: err}
	}

	return entry, Outcome{Written: true}
}
