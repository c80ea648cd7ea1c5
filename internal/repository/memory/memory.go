// Package memory holds in-process implementations of the repositories,
// used by tests and local tooling that run without MongoDB.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"certpoints/internal/model"
	"certpoints/internal/repository"
)

var (
	_ repository.ActivityRepo    = (*ActivityRepo)(nil)
	_ repository.CertificateRepo = (*CertificateRepo)(nil)
	_ repository.UserRepo        = (*UserRepo)(nil)
)

// ActivityRepo keeps rules in insertion order
type ActivityRepo struct {
	mu    sync.Mutex
	rules []model.ActivityRule
	seq   int

	// Err, when set, is returned by List
	Err error
	// Lists counts List calls
	Lists int
}

func (r *ActivityRepo) Create(_ context.Context, rule *model.ActivityRule) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	rule.ID = fmt.Sprintf("r%d", r.seq)
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt
	r.rules = append(r.rules, *rule)
	return rule.ID, nil
}

func (r *ActivityRepo) GetByID(_ context.Context, id string) (*model.ActivityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rule := range r.rules {
		if rule.ID == id {
			rule := rule
			return &rule, nil
		}
	}
	return nil, nil
}

func (r *ActivityRepo) List(context.Context) ([]*model.ActivityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lists++
	if r.Err != nil {
		return nil, r.Err
	}
	return r.copyWhere(func(model.ActivityRule) bool { return true }), nil
}

func (r *ActivityRepo) Search(_ context.Context, query string) ([]*model.ActivityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(query)
	return r.copyWhere(func(rule model.ActivityRule) bool {
		if strings.Contains(strings.ToLower(rule.Name), q) {
			return true
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(strings.ToLower(kw), q) {
				return true
			}
		}
		return false
	}), nil
}

func (r *ActivityRepo) copyWhere(keep func(model.ActivityRule) bool) []*model.ActivityRule {
	out := []*model.ActivityRule{}
	for _, rule := range r.rules {
		if keep(rule) {
			rule := rule
			out = append(out, &rule)
		}
	}
	return out
}

func (r *ActivityRepo) Update(_ context.Context, rule *model.ActivityRule) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rules {
		if r.rules[i].ID == rule.ID {
			rule.CreatedAt = r.rules[i].CreatedAt
			rule.UpdatedAt = time.Now()
			r.rules[i] = *rule
			return true, nil
		}
	}
	return false, nil
}

func (r *ActivityRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rules {
		if r.rules[i].ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *ActivityRepo) InsertMany(ctx context.Context, rules []model.ActivityRule) (int, error) {
	for i := range rules {
		if _, err := r.Create(ctx, &rules[i]); err != nil {
			return i, err
		}
	}
	return len(rules), nil
}

func (r *ActivityRepo) DeleteAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.rules))
	r.rules = nil
	return n, nil
}

// CertificateRepo keeps certificates newest first
type CertificateRepo struct {
	mu    sync.Mutex
	certs []model.Certificate
	seq   int

	// Err, when set, is returned by ListByUser
	Err error
}

func (r *CertificateRepo) Create(_ context.Context, cert *model.Certificate) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cert.ID = fmt.Sprintf("c%d", r.seq)
	cert.CreatedAt = time.Now()
	cert.UpdatedAt = cert.CreatedAt
	if cert.Status == "" {
		cert.Status = model.StatusPending
	}
	r.certs = append([]model.Certificate{*cert}, r.certs...)
	return cert.ID, nil
}

// Insert stores certificates exactly as given
func (r *CertificateRepo) Insert(certs ...model.Certificate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.certs = append(r.certs, certs...)
}

// All returns every stored certificate
func (r *CertificateRepo) All() []model.Certificate {
	return r.where(func(model.Certificate) bool { return true })
}

func (r *CertificateRepo) GetByID(_ context.Context, id string) (*model.Certificate, error) {
	for _, c := range r.where(func(c model.Certificate) bool { return c.ID == id }) {
		c := c
		return &c, nil
	}
	return nil, nil
}

func (r *CertificateRepo) ListByUser(_ context.Context, userID string) ([]model.Certificate, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.where(func(c model.Certificate) bool { return c.UserID == userID }), nil
}

func (r *CertificateRepo) ListByClass(_ context.Context, class string) ([]model.Certificate, error) {
	return r.where(func(c model.Certificate) bool { return c.Class == class }), nil
}

func (r *CertificateRepo) where(keep func(model.Certificate) bool) []model.Certificate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Certificate{}
	for _, c := range r.certs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (r *CertificateRepo) UpdateReview(_ context.Context, id string, status model.CertificateStatus, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.certs {
		if r.certs[i].ID == id {
			r.certs[i].Status = status
			r.certs[i].PointsAwarded = points
			r.certs[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("certificate %s not found", id)
}

func (r *CertificateRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.certs {
		if r.certs[i].ID == id {
			r.certs = append(r.certs[:i], r.certs[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CertificateRepo) ApprovedTotals(_ context.Context, class string) (map[string]int, error) {
	totals := map[string]int{}
	for _, c := range r.where(func(c model.Certificate) bool {
		return c.Class == class && c.Status == model.StatusApproved
	}) {
		totals[c.UserID] += c.PointsAwarded
	}
	return totals, nil
}

// UserRepo keeps users by id
type UserRepo struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (r *UserRepo) Create(_ context.Context, user *model.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users == nil {
		r.users = map[string]model.User{}
	}
	user.ID = fmt.Sprintf("u%d", len(r.users)+1)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ListByClass(_ context.Context, class string) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.User{}
	for _, u := range r.users {
		if u.Class == class && u.Role == model.RoleStudent {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
