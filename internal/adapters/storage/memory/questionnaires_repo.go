package memory

import (
	"context"
	"fmt"
	"sync"

	"pet-match-engine/internal/domain/questionnaire"

	"github.com/google/uuid"
)

type QuestionnaireRepo struct {
	mu   sync.RWMutex
	byID map[string]questionnaire.Questionnaire
}

// NewQuestionnaireRepo crea el store in-memory (dev/tests).
// El intake real vive fuera de este servicio; Put existe solo para seed.
func NewQuestionnaireRepo() *QuestionnaireRepo {
	return &QuestionnaireRepo{
		byID: make(map[string]questionnaire.Questionnaire),
	}
}

// Put inserta un cuestionario; sin id asigna uno nuevo. Devuelve el id.
func (r *QuestionnaireRepo) Put(q questionnaire.Questionnaire) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	r.byID[q.ID] = q
	return q.ID
}

func (r *QuestionnaireRepo) GetByID(ctx context.Context, id string) (questionnaire.Questionnaire, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.byID[id]
	if !ok {
		return questionnaire.Questionnaire{}, fmt.Errorf("memory: %w", questionnaire.ErrNotFound)
	}
	return q, nil
}

func (r *QuestionnaireRepo) LatestByUser(ctx context.Context, userID string) (questionnaire.Questionnaire, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest questionnaire.Questionnaire
	found := false
	for _, q := range r.byID {
		if q.UserID == nil || *q.UserID != userID {
			continue
		}
		if !found || q.CreatedAt.After(latest.CreatedAt) {
			latest = q
			found = true
		}
	}

	if !found {
		return questionnaire.Questionnaire{}, fmt.Errorf("memory: %w", questionnaire.ErrNotFound)
	}
	return latest, nil
}
