package repositories

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	dbm "tripplanner/internal/models/db_models"
)

type memoryDraftRepository struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]dbm.PlanDraft
}

// NewMemoryDraftRepository keeps drafts for the life of the process.
func NewMemoryDraftRepository() DraftRepository {
	return &memoryDraftRepository{drafts: make(map[uuid.UUID]dbm.PlanDraft)}
}

func copyDraft(d dbm.PlanDraft) dbm.PlanDraft {
	d.ActivityIDs = slices.Clone(d.ActivityIDs)
	d.Snapshot = slices.Clone(d.Snapshot)
	return d
}

func (r *memoryDraftRepository) Save(ctx context.Context, draft *dbm.PlanDraft) error {
	draft.Touch()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.ID] = copyDraft(*draft)
	return nil
}

func (r *memoryDraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.PlanDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drafts[id]
	if !ok {
		return nil, nil
	}
	out := copyDraft(d)
	return &out, nil
}

func (r *memoryDraftRepository) ListByUser(ctx context.Context, userID int64) ([]dbm.PlanDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []dbm.PlanDraft
	for _, d := range r.drafts {
		if d.UserID == userID {
			out = append(out, copyDraft(d))
		}
	}
	slices.SortFunc(out, func(a, b dbm.PlanDraft) int {
		if c := cmp.Compare(b.UpdatedAt, a.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (r *memoryDraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}
