package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Estacionamento-api/internal/domain"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
)

var _ repository.ExitRepository = (*ExitRepo)(nil)

// ExitRepo salidas en memoria, ordenadas por ExitAt descendente al listar.
type ExitRepo struct {
	mu      sync.RWMutex
	records []*entity.ExitRecord
}

// NewExitRepository construye el repositorio vacío.
func NewExitRepository() *ExitRepo {
	return &ExitRepo{}
}

func (r *ExitRepo) Create(_ context.Context, record *entity.ExitRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ID == record.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *record
	r.records = append(r.records, &cp)
	return nil
}

func (r *ExitRepo) GetByID(_ context.Context, id string) (*entity.ExitRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ExitRepo) List(_ context.Context, limit, offset int) ([]*entity.ExitRecord, error) {
	sorted := r.sorted()
	if offset >= len(sorted) {
		return []*entity.ExitRecord{}, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (r *ExitRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.ExitRecord, error) {
	var out []*entity.ExitRecord
	for _, rec := range r.sorted() {
		if !rec.ExitAt.Before(from) && rec.ExitAt.Before(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *ExitRepo) sorted() []*entity.ExitRecord {
	r.mu.RLock()
	out := make([]*entity.ExitRecord, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		out = append(out, &cp)
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExitAt.After(out[j].ExitAt) })
	return out
}
