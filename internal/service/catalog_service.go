package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"certpoints/internal/cache"
	"certpoints/internal/catalog"
	"certpoints/internal/logger"
	"certpoints/internal/model"
	"certpoints/internal/repository"
)

var ErrRuleNotFound = errors.New("activity rule not found")

// CatalogService administers the activity rule catalog and serves the
// snapshots the points engine scores against
type CatalogService struct {
	repo     repository.ActivityRepo
	cache    cache.CatalogCache // optional
	validate *Validator
	log      logger.Logger
}

// NewCatalogService creates a catalog service. cache may be nil.
func NewCatalogService(repo repository.ActivityRepo, c cache.CatalogCache, log logger.Logger) *CatalogService {
	if log == nil {
		log = logger.Discard()
	}
	return &CatalogService{
		repo:     repo,
		cache:    c,
		validate: NewValidator(),
		log:      log,
	}
}

// Snapshot implements catalog.Source. A cached copy is used until a rule
// changes; an empty collection serves the built-in rules.
func (s *CatalogService) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	if s.cache != nil {
		entry, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn(fmt.Sprintf("catalog cache unavailable: %v", err), err)
		} else if entry != nil {
			return catalog.NewSnapshot(entry.Version, entry.Rules), nil
		}
	}

	rules, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return catalog.NewSnapshot(catalog.DefaultVersion, catalog.DefaultRules()), nil
	}

	entry := &cache.CatalogEntry{Version: uuid.New().String(), Rules: deref(rules)}
	if s.cache != nil {
		if err := s.cache.Set(ctx, entry); err != nil {
			s.log.Warn(fmt.Sprintf("caching catalog: %v", err), err)
		}
	}
	return catalog.NewSnapshot(entry.Version, entry.Rules), nil
}

func deref(rules []*model.ActivityRule) []model.ActivityRule {
	out := make([]model.ActivityRule, len(rules))
	for i, r := range rules {
		out[i] = *r
	}
	return out
}

// List returns every rule in catalog order
func (s *CatalogService) List(ctx context.Context) ([]*model.ActivityRule, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*model.ActivityRule, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}
	return rule, nil
}

// Search finds rules whose name or keywords contain query, most similar first
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.ActivityRule, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.ActivityRule{}, nil
	}
	rules, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return catalog.Rank(deref(rules), query), nil
}

func (s *CatalogService) Create(ctx context.Context, rule *model.ActivityRule) (*model.ActivityRule, error) {
	if err := s.prepare(rule); err != nil {
		return nil, err
	}
	if _, err := s.repo.Create(ctx, rule); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return rule, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, rule *model.ActivityRule) (*model.ActivityRule, error) {
	if err := s.prepare(rule); err != nil {
		return nil, err
	}
	rule.ID = id
	found, err := s.repo.Update(ctx, rule)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRuleNotFound
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrRuleNotFound
	}
	s.invalidate(ctx)
	return nil
}

// Seed replaces the stored catalog with rules. An empty list only clears it.
func (s *CatalogService) Seed(ctx context.Context, rules []model.ActivityRule) (int, error) {
	for i := range rules {
		rules[i].Keywords = catalog.NormalizeKeywords(rules[i].Keywords)
	}
	if _, err := s.repo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	n, err := s.repo.InsertMany(ctx, rules)
	s.invalidate(ctx)
	return n, err
}

// prepare lower-cases keywords and validates the rule
func (s *CatalogService) prepare(rule *model.ActivityRule) error {
	if rule == nil {
		return NewValidationError(errors.New("missing activity rule"))
	}
	rule.Name = strings.TrimSpace(rule.Name)
	rule.ActivityNumber = strings.TrimSpace(rule.ActivityNumber)
	rule.Keywords = catalog.NormalizeKeywords(rule.Keywords)
	return s.validate.Struct(rule)
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Error(fmt.Sprintf("invalidating catalog cache: %v", err), err)
	}
}
