package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/pkg/errors"

	"certpoints/internal/cache"
	"certpoints/internal/classify"
	"certpoints/internal/dedupe"
	"certpoints/internal/logger"
	"certpoints/internal/model"
	"certpoints/internal/points"
	"certpoints/internal/repository"
)

var (
	ErrDuplicateCertificate = errors.New("this certificate appears to be a duplicate of one you have already uploaded")
	ErrNameMismatch         = errors.New("the name on the certificate does not match your name; please upload certificates issued to you only")
	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrNotOwner             = errors.New("not authorized to modify this certificate")
	ErrInvalidStatus        = errors.New("status must be pending, approved or rejected")
)

// OCRProcessor turns an uploaded image into an OCR reply
type OCRProcessor interface {
	Process(ctx context.Context, fileName string, image io.Reader) (model.ExtractedRecord, error)
}

// Uploader is the student submitting a certificate
type Uploader struct {
	ID    string
	Name  string
	Class string
}

// Preview is a scoring dry run
type Preview struct {
	Entities model.ExtractedRecord `json:"entities"`
	Keyword  string                `json:"keyword"`
	Rule     string                `json:"rule"`
	Points   model.PointsResult    `json:"pointsCalculation"`
}

// CertificateService runs the upload pipeline and the review workflow
type CertificateService struct {
	certRepo    repository.CertificateRepo
	userRepo    repository.UserRepo
	leaderboard cache.LeaderboardCache // optional
	ocr         OCRProcessor           // optional
	entities    *EntityService
	engine      *points.Engine
	matcher     *dedupe.Matcher
	files       *FileStore
	broadcaster Broadcaster
	log         logger.Logger
}

// NewCertificateService creates a new certificate service
func NewCertificateService(
	certRepo repository.CertificateRepo,
	userRepo repository.UserRepo,
	leaderboard cache.LeaderboardCache,
	ocr OCRProcessor,
	entities *EntityService,
	engine *points.Engine,
	matcher *dedupe.Matcher,
	files *FileStore,
	log logger.Logger,
) *CertificateService {
	if log == nil {
		log = logger.Discard()
	}
	return &CertificateService{
		certRepo:    certRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
		ocr:         ocr,
		entities:    entities,
		engine:      engine,
		matcher:     matcher,
		files:       files,
		broadcaster: noopBroadcaster{},
		log:         log,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *CertificateService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Upload stores, reads, checks and scores a certificate, saving it as
// pending review. Duplicates and certificates naming someone else are
// rejected and their file removed.
func (s *CertificateService) Upload(ctx context.Context, who Uploader, fileName string, file io.Reader) (*model.Certificate, error) {
	stored, err := s.files.Save(who.ID, fileName, file)
	if err != nil {
		return nil, err
	}

	rec := s.entities.Enrich(ctx, s.runOCR(ctx, stored))

	existing, err := s.certRepo.ListByUser(ctx, who.ID)
	if err != nil {
		s.log.Warn(fmt.Sprintf("duplicate check skipped for %s: %v", who.ID, err), err)
		existing = nil
	}
	if d := s.matcher.Check(existing, rec, fileName); d.Duplicate {
		log.Printf("Duplicate upload by %s (%s match with %s, score %d)", who.ID, d.Reason, d.MatchedID, d.Score)
		s.discard(stored)
		return nil, ErrDuplicateCertificate
	}

	result := s.engine.Score(ctx, rec)

	if !dedupe.VerifyIdentity(who.Name, rec) {
		log.Printf("Name mismatch on upload by %s", who.ID)
		s.discard(stored)
		return nil, ErrNameMismatch
	}

	keyword := classify.Classify(classify.Source{
		RawText:       rec.RawText,
		FileName:      fileName,
		EventName:     rec.EventName,
		Organizations: rec.Organizations,
		ActivityType:  result.ActivityType,
		PreviousName:  result.ActivityName,
	})

	cert := &model.Certificate{
		UserID:        who.ID,
		Class:         who.Class,
		FileName:      fileName,
		FilePath:      stored,
		ActivityType:  result.ActivityType,
		ActivityName:  keyword,
		ActivityLevel: result.ActivityLevel,
		PointsAwarded: result.Points,
		Status:        model.StatusPending,
		ExtractedData: model.CertificateData{
			RawText:           rec.RawText,
			Entities:          rec,
			PointsCalculation: result,
		},
	}
	if _, err := s.certRepo.Create(ctx, cert); err != nil {
		s.discard(stored)
		return nil, err
	}

	log.Printf("Certificate %s uploaded by %s: %s, %d points", cert.ID, who.ID, keyword, cert.PointsAwarded)
	s.broadcaster.BroadcastToClass(cert.Class, MsgCertificateUploaded, cert)
	return cert, nil
}

// runOCR reads the stored file through the OCR service. Failures give an
// empty reply so the upload continues on local extraction.
func (s *CertificateService) runOCR(ctx context.Context, stored string) model.ExtractedRecord {
	if s.ocr == nil {
		return model.ExtractedRecord{}
	}
	f, err := s.files.Open(stored)
	if err != nil {
		s.log.Error(fmt.Sprintf("reopening upload %s: %v", stored, err), err)
		return model.ExtractedRecord{}
	}
	defer f.Close()

	rec, err := s.ocr.Process(ctx, stored, f)
	if err != nil {
		s.log.Warn(fmt.Sprintf("ocr failed for %s, continuing with a degraded record: %v", stored, err), err)
		return model.ExtractedRecord{}
	}
	return rec
}

func (s *CertificateService) discard(stored string) {
	if err := s.files.Remove(stored); err != nil {
		s.log.Error(fmt.Sprintf("removing rejected upload %s: %v", stored, err), err)
	}
}

// Preview extracts, classifies and scores without storing anything
func (s *CertificateService) Preview(ctx context.Context, input model.ExtractedRecord) Preview {
	rec := s.entities.Enrich(ctx, input)
	keyword, rule := classify.Explain(classify.FromRecord(rec))
	return Preview{
		Entities: rec,
		Keyword:  keyword,
		Rule:     rule,
		Points:   s.engine.Score(ctx, rec),
	}
}

// List returns a student's certificates, newest first
func (s *CertificateService) List(ctx context.Context, userID string) ([]model.Certificate, error) {
	return s.certRepo.ListByUser(ctx, userID)
}

// ListByClass returns every certificate of a class, newest first
func (s *CertificateService) ListByClass(ctx context.Context, class string) ([]model.Certificate, error) {
	return s.certRepo.ListByClass(ctx, class)
}

// Summary totals a student's approved certificates by activity type
func (s *CertificateService) Summary(ctx context.Context, userID string) (*model.PointsSummary, error) {
	certs, err := s.certRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Summarize(certs), nil
}

// Summarize groups approved certificates by activity type in order of
// first appearance
func Summarize(certs []model.Certificate) *model.PointsSummary {
	summary := &model.PointsSummary{Activities: []model.ActivityGroup{}}
	index := map[string]int{}
	for _, c := range certs {
		if c.Status != model.StatusApproved {
			continue
		}
		i, ok := index[c.ActivityType]
		if !ok {
			i = len(summary.Activities)
			index[c.ActivityType] = i
			summary.Activities = append(summary.Activities, model.ActivityGroup{
				Type:         c.ActivityType,
				Certificates: []model.SummaryItem{},
			})
		}
		group := &summary.Activities[i]
		group.Certificates = append(group.Certificates, model.SummaryItem{
			ID:     c.ID,
			Name:   c.ActivityName,
			Level:  c.ActivityLevel,
			Points: c.PointsAwarded,
		})
		group.TotalPoints += c.PointsAwarded
		summary.TotalPoints += c.PointsAwarded
	}
	return summary
}

// Review sets a certificate's status and, optionally, its points. The
// class leaderboard follows approved points.
func (s *CertificateService) Review(ctx context.Context, id string, status model.CertificateStatus, points *int) (*model.Certificate, error) {
	cert, err := s.certRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, ErrCertificateNotFound
	}
	if status == "" {
		status = cert.Status
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	newPoints := cert.PointsAwarded
	if points != nil {
		if *points < 0 {
			return nil, NewValidationError(errors.New("invalid points"), FieldError{Field: "pointsAwarded", Error: "pointsAwarded must be 0 or greater"})
		}
		newPoints = *points
	}

	if err := s.certRepo.UpdateReview(ctx, id, status, newPoints); err != nil {
		return nil, err
	}
	delta := approvedPoints(status, newPoints) - approvedPoints(cert.Status, cert.PointsAwarded)
	s.adjustLeaderboard(ctx, cert.Class, cert.UserID, delta)

	cert.Status = status
	cert.PointsAwarded = newPoints
	log.Printf("Certificate %s reviewed: %s, %d points", id, status, newPoints)
	s.broadcaster.BroadcastToUser(cert.UserID, MsgCertificateReviewed, cert)
	return cert, nil
}

// Delete removes a student's own certificate and its file
func (s *CertificateService) Delete(ctx context.Context, userID, id string) error {
	cert, err := s.certRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cert == nil {
		return ErrCertificateNotFound
	}
	if cert.UserID != userID {
		return ErrNotOwner
	}

	if err := s.files.Remove(cert.FilePath); err != nil {
		s.log.Error(fmt.Sprintf("removing file of certificate %s: %v", id, err), err)
	}
	if err := s.certRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.adjustLeaderboard(ctx, cert.Class, cert.UserID, -approvedPoints(cert.Status, cert.PointsAwarded))

	s.broadcaster.BroadcastToClass(cert.Class, MsgCertificateDeleted, map[string]string{"id": id, "userId": userID})
	return nil
}

func approvedPoints(status model.CertificateStatus, points int) int {
	if status == model.StatusApproved {
		return points
	}
	return 0
}

func (s *CertificateService) adjustLeaderboard(ctx context.Context, class, userID string, delta int) {
	if s.leaderboard == nil || delta == 0 || class == "" {
		return
	}
	if err := s.leaderboard.IncrBy(ctx, class, userID, delta); err != nil {
		s.log.Error(fmt.Sprintf("updating leaderboard of %s: %v", class, err), err)
	}
}

// Leaderboard ranks a class by approved points. The cached board is
// rebuilt from stored certificates when it is empty or unreachable.
func (s *CertificateService) Leaderboard(ctx context.Context, class string, top int) ([]model.LeaderboardEntry, error) {
	if top <= 0 {
		top = 10
	}

	var entries []model.LeaderboardEntry
	if s.leaderboard != nil {
		cached, err := s.leaderboard.GetTop(ctx, class, top)
		if err != nil {
			s.log.Warn(fmt.Sprintf("leaderboard cache unavailable: %v", err), err)
		}
		entries = cached
	}

	if len(entries) == 0 {
		totals, err := s.certRepo.ApprovedTotals(ctx, class)
		if err != nil {
			return nil, err
		}
		if s.leaderboard != nil && len(totals) > 0 {
			if err := s.leaderboard.Rebuild(ctx, class, totals); err != nil {
				s.log.Warn(fmt.Sprintf("rebuilding leaderboard: %v", err), err)
			}
		}
		entries = rank(totals, top)
	}

	s.attachNames(ctx, class, entries)
	return entries, nil
}

// rank orders totals by points, then user id, keeping the first top
func rank(totals map[string]int, top int) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(totals))
	for userID, pts := range totals {
		entries = append(entries, model.LeaderboardEntry{UserID: userID, Points: pts})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > top {
		entries = entries[:top]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (s *CertificateService) attachNames(ctx context.Context, class string, entries []model.LeaderboardEntry) {
	if len(entries) == 0 || s.userRepo == nil {
		return
	}
	users, err := s.userRepo.ListByClass(ctx, class)
	if err != nil {
		s.log.Warn(fmt.Sprintf("leaderboard names unavailable: %v", err), err)
		return
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for i := range entries {
		entries[i].Name = names[entries[i].UserID]
	}
}
