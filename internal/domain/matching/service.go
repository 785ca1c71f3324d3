package matching

import (
	"context"
	"errors"
	"sort"
	"time"

	"pet-match-engine/internal/domain/catalog"
	"pet-match-engine/internal/domain/questionnaire"
	"pet-match-engine/internal/platform/logger"
)

// Service orquesta una corrida de matching:
// cuestionario -> filtro -> [fallback] -> rasgos -> score -> sort -> persist.
// Stateless entre requests; cada corrida es independiente.
type Service struct {
	questionnaires questionnaire.Repository
	catalog        *catalog.Service
	recs           RecommendationRepository

	cfg    Config
	scorer *Scorer
	log    logger.Logger
	now    func() time.Time
}

func NewService(
	questionnaires questionnaire.Repository,
	cat *catalog.Service,
	recs RecommendationRepository,
	cfg Config,
	log logger.Logger,
) *Service {
	return &Service{
		questionnaires: questionnaires,
		catalog:        cat,
		recs:           recs,
		cfg:            cfg,
		scorer:         NewScorer(cfg),
		log:            log,
		now:            time.Now,
	}
}

// Recommend corre el matching para un cuestionario puntual.
func (s *Service) Recommend(ctx context.Context, questionnaireID string) (Result, error) {
	q, err := s.questionnaires.GetByID(ctx, questionnaireID)
	if err != nil {
		if errors.Is(err, questionnaire.ErrNotFound) {
			return Result{}, ErrQuestionnaireNotFound
		}
		return Result{}, err
	}
	return s.run(ctx, q)
}

// RecommendForUser corre el matching sobre el último cuestionario del usuario.
func (s *Service) RecommendForUser(ctx context.Context, userID string) (Result, error) {
	q, err := s.questionnaires.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, questionnaire.ErrNotFound) {
			return Result{}, ErrQuestionnaireNotFound
		}
		return Result{}, err
	}
	return s.run(ctx, q)
}

func (s *Service) run(ctx context.Context, q questionnaire.Questionnaire) (Result, error) {
	now := s.now()

	// Candidatos elegibles: el repo ya excluye adoptados, orden id asc.
	pets, err := s.catalog.ListAvailable(ctx)
	if err != nil {
		return Result{}, err
	}

	ids := make([]int64, 0, len(pets))
	for _, p := range pets {
		ids = append(ids, p.ID)
	}
	traits, err := s.catalog.TraitsByPets(ctx, ids)
	if err != nil {
		return Result{}, err
	}

	pred := BuildPredicate(q, s.cfg.Traits, now)
	candidates, broadened := FilterCandidates(pets, traits, pred, s.cfg.FallbackCap)

	items := make([]Item, 0, len(candidates))
	for _, p := range candidates {
		traitIDs := traitIDList(traits[p.ID])
		bd := s.scorer.Score(q, traitIDs)
		items = append(items, Item{
			PetID:            p.ID,
			Name:             p.Name,
			Species:          string(p.Species),
			Weight:           p.Weight,
			AgeYears:         p.AgeYears(now),
			MatchScore:       bd.Total,
			MatchingTraitIDs: intersect(q.PreferredTraits, traitIDs),
			StoreLocation:    p.StoreLocation,
			Breakdown:        bd,
		})
	}

	// Orden total determinista: score desc, empates por pet id asc.
	// Nunca por orden de inserción del store.
	sort.Slice(items, func(i, j int) bool {
		if items[i].MatchScore != items[j].MatchScore {
			return items[i].MatchScore > items[j].MatchScore
		}
		return items[i].PetID < items[j].PetID
	})

	res := Result{Items: items, Broadened: broadened}
	if broadened {
		res.Message = BroadenedMessage
	}

	// Persistencia best-effort: un fallo acá nunca tapa el resultado ya
	// calculado. Cuestionario anónimo => se omite y no es error.
	if q.UserID != nil && *q.UserID != "" {
		s.persist(ctx, *q.UserID, items, now)
	}

	return res, nil
}

func (s *Service) persist(ctx context.Context, userID string, items []Item, now time.Time) {
	recs := make([]Recommendation, 0, len(items))
	for _, it := range items {
		recs = append(recs, Recommendation{
			UserID:     userID,
			PetID:      it.PetID,
			MatchScore: it.MatchScore,
			CreatedAt:  now,
		})
	}

	err := s.recs.ReplaceForUser(ctx, userID, recs)
	if err != nil {
		// un retry por fallo transitorio, después se suelta
		err = s.recs.ReplaceForUser(ctx, userID, recs)
	}
	if err != nil {
		s.log.Warn("recommendation persist failed", map[string]any{
			"user_id": userID,
			"count":   len(recs),
			"error":   err.Error(),
		})
	}
}

// intersect devuelve preferred ∩ have en orden ascendente.
func intersect(preferred, have []int64) []int64 {
	out := make([]int64, 0, len(preferred))
	for _, want := range preferred {
		for _, h := range have {
			if want == h {
				out = append(out, want)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
