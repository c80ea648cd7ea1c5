package service

import (
	"context"
	"fmt"

	"certpoints/internal/corpus"
	"certpoints/internal/extract"
	"certpoints/internal/logger"
	"certpoints/internal/model"
	"certpoints/internal/points"
)

// EntityExtractor is a remote entity extraction backend
type EntityExtractor interface {
	Entities(ctx context.Context, rawText string) (model.ExtractedRecord, error)
}

// EntityService builds the extracted record for a certificate, preferring
// the remote NLP service and falling back to local pattern extraction
type EntityService struct {
	remote   EntityExtractor // optional
	defaults model.Defaults
	log      logger.Logger
}

func NewEntityService(remote EntityExtractor, defaults model.Defaults, log logger.Logger) *EntityService {
	if log == nil {
		log = logger.Discard()
	}
	return &EntityService{remote: remote, defaults: defaults, log: log}
}

// Extract never fails. Fields the remote service leaves empty come from
// the local extractor.
func (s *EntityService) Extract(ctx context.Context, rawText string) model.ExtractedRecord {
	local := extract.Extract(rawText)
	if s.remote == nil {
		return local
	}

	remote, err := s.remote.Entities(ctx, rawText)
	if err != nil {
		s.log.Warn(fmt.Sprintf("entity service unavailable, using pattern extraction: %v", err), err)
		return local
	}
	remote.RawText = rawText
	return s.Merge(remote, local)
}

// Enrich turns an OCR reply into a complete record: entities are extracted
// from its raw text, its own fields and hints take precedence, and a level
// is detected when none was given.
func (s *EntityService) Enrich(ctx context.Context, ocr model.ExtractedRecord) model.ExtractedRecord {
	rec := s.Merge(ocr, s.Extract(ctx, ocr.RawText))
	if !rec.ActivityLevel.Valid() {
		rec.ActivityLevel = points.DetectLevel(corpus.New(rec.RawText, rec.EventName))
	}
	return rec
}

// Merge keeps every field set in primary and fills the rest from fallback
func (s *EntityService) Merge(primary, fallback model.ExtractedRecord) model.ExtractedRecord {
	out := primary
	if len(out.Names) == 0 {
		out.Names = fallback.Names
	}
	if len(out.Organizations) == 0 {
		out.Organizations = fallback.Organizations
	}
	if len(out.Dates) == 0 {
		out.Dates = fallback.Dates
	}
	if len(out.Positions) == 0 {
		out.Positions = fallback.Positions
	}
	if s.defaults.IsUnknown(out.EventName) && !s.defaults.IsUnknown(fallback.EventName) {
		out.EventName = fallback.EventName
	}
	out.CertificateType = firstSet(out.CertificateType, fallback.CertificateType)
	out.EventDuration = firstSet(out.EventDuration, fallback.EventDuration)
	out.Location = firstSet(out.Location, fallback.Location)
	out.Prize = firstSet(out.Prize, fallback.Prize)
	out.ActivityHead = firstSet(out.ActivityHead, fallback.ActivityHead)
	out.ActivityName = firstSet(out.ActivityName, fallback.ActivityName)
	out.RawText = firstSet(out.RawText, fallback.RawText)
	out.ActivityNumber = firstSet(out.ActivityNumber, fallback.ActivityNumber)
	if !out.ActivityLevel.Valid() {
		out.ActivityLevel = fallback.ActivityLevel
	}
	if out.PointsAwarded <= 0 {
		out.PointsAwarded = fallback.PointsAwarded
	}

	s.defaults.Fill(&out)
	return out
}

func firstSet(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
