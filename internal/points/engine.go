package points

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"certpoints/internal/catalog"
	"certpoints/internal/classify"
	"certpoints/internal/corpus"
	"certpoints/internal/logger"
	"certpoints/internal/model"
)

// Engine scores extracted records against a catalog source
type Engine struct {
	source catalog.Source
	policy Policy
	log    logger.Logger
}

func NewEngine(source catalog.Source, policy Policy, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{source: source, policy: policy, log: log}
}

// Policy returns the engine's scoring policy
func (e *Engine) Policy() Policy {
	return e.policy
}

// Score reads a fresh catalog snapshot and scores rec. It never fails: a
// catalog or internal error yields the fallback result.
func (e *Engine) Score(ctx context.Context, rec model.ExtractedRecord) model.PointsResult {
	snap, err := e.source.Snapshot(ctx)
	if err != nil {
		e.log.Warn(fmt.Sprintf("scoring without catalog: %v", err), err)
		return Fallback(rec, e.policy)
	}
	res, err := ScoreWith(snap, rec, e.policy)
	if err != nil {
		e.log.Error(fmt.Sprintf("scoring failed: %v", err), err)
	}
	return res
}

// ScoreWith scores rec against snap. A non-nil error means the returned
// result is the fallback.
func ScoreWith(snap *catalog.Snapshot, rec model.ExtractedRecord, policy Policy) (res model.PointsResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("scoring panicked: %v", r)
			res = Fallback(rec, policy)
		}
	}()

	keyword := classify.Classify(classify.FromRecord(rec))
	sc := &scoring{
		rec:     rec,
		keyword: keyword,
		text:    searchCorpus(rec, keyword),
		policy:  policy,
		res:     initialResult(rec, keyword, policy.Defaults),
	}
	sc.prize = DetectPrize(sc.text)

	for _, c := range specialCases {
		if c.applies(sc) {
			c.apply(sc)
			return sc.res, nil
		}
	}
	sc.lookup(snap)
	return sc.res, nil
}

// Fallback is the minimal result used when scoring cannot complete
func Fallback(rec model.ExtractedRecord, policy Policy) model.PointsResult {
	d := policy.Defaults
	res := model.PointsResult{
		ActivityType:   rec.ActivityHead,
		ActivityName:   safeKeyword(rec),
		ActivityLevel:  d.Level(rec.ActivityLevel),
		ActivityNumber: d.ActivityNumber,
		Points:         rec.PointsAwarded,
	}
	if res.ActivityType == "" {
		res.ActivityType = d.ActivityType
	}
	if res.ActivityName == "" {
		res.ActivityName = rec.EventName
	}
	if res.ActivityName == "" {
		res.ActivityName = d.ActivityType
	}
	if res.Points <= 0 {
		res.Points = d.Points
	}
	return res
}

func safeKeyword(rec model.ExtractedRecord) (kw string) {
	defer func() {
		if recover() != nil {
			kw = ""
		}
	}()
	return classify.Classify(classify.FromRecord(rec))
}

// searchCorpus is the text the special cases and catalog lookup match against
func searchCorpus(rec model.ExtractedRecord, keyword string) corpus.Corpus {
	parts := []string{rec.RawText, rec.EventName}
	parts = append(parts, rec.Organizations...)
	parts = append(parts, keyword)
	return corpus.New(parts...)
}

func initialResult(rec model.ExtractedRecord, keyword string, d model.Defaults) model.PointsResult {
	res := model.PointsResult{
		ActivityType:   rec.ActivityHead,
		ActivityName:   keyword,
		ActivityLevel:  d.Level(rec.ActivityLevel),
		ActivityNumber: rec.ActivityNumber,
	}
	if res.ActivityType == "" {
		res.ActivityType = d.ActivityType
	}
	if res.ActivityName == "" {
		res.ActivityName = rec.EventName
	}
	if res.ActivityName == "" {
		res.ActivityName = d.ActivityType
	}
	if res.ActivityNumber == "" {
		res.ActivityNumber = d.ActivityNumber
	}
	return res
}

// scoring is the state of one scoring pass
type scoring struct {
	rec     model.ExtractedRecord
	keyword string
	text    corpus.Corpus
	prize   Prize
	policy  Policy
	res     model.PointsResult
}

func (s *scoring) collegeLevel() bool {
	return s.res.ActivityLevel == model.LevelI
}

// participation sets the college-level base plus any prize bonus
func (s *scoring) participation(head model.ActivityHead, name string) {
	s.res.Points = s.policy.ParticipationPoints + s.policy.Bonus(s.prize)
	s.res.ActivityType = string(head)
	s.res.ActivityName = name
}

// lookup scores against the best catalog match, or the default points
func (s *scoring) lookup(snap *catalog.Snapshot) {
	m, ok := snap.Match(s.text)
	if !ok {
		s.res.Points = s.policy.Defaults.Points
		s.applyHint()
		return
	}

	rule := m.Rule
	s.res.ActivityType = string(rule.ActivityHead)
	s.res.ActivityNumber = rule.ActivityNumber
	s.res.Points = rule.PointsPerLevel.At(s.res.ActivityLevel) + s.policy.Bonus(s.prize)
	s.applyHint()
	s.res.Points = clamp(s.res.Points, rule.MaxPoints)
}

// applyHint uses the external points hint when nothing was computed
func (s *scoring) applyHint() {
	if s.res.Points == 0 && s.rec.PointsAwarded > 0 {
		s.res.Points = s.rec.PointsAwarded
	}
}

// clamp bounds points to [0, maxPoints]. A zero maximum means no cap.
func clamp(points, maxPoints int) int {
	if points < 0 {
		return 0
	}
	if maxPoints > 0 && points > maxPoints {
		return maxPoints
	}
	return points
}
