package matching

import (
	"math"

	"pet-match-engine/internal/domain/questionnaire"
)

// Scorer calcula el match score de un candidato contra un cuestionario.
// Determinista: mismos inputs => mismo desglose, sin estado ni relojes.
type Scorer struct {
	w    Weights
	sets TraitSets
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{w: cfg.Weights, sets: cfg.Traits}
}

// Score evalúa los cuatro factores independientes sobre la base 0.5.
// Total = min(1.0, base + suma de aportes), redondeado a 2 decimales.
func (s *Scorer) Score(q questionnaire.Questionnaire, traitIDs []int64) ScoreBreakdown {
	factors := []FactorContribution{
		{Factor: FactorTraitOverlap, Contribution: s.traitOverlap(q.PreferredTraits, traitIDs)},
		{Factor: FactorActivity, Contribution: s.activityMatch(q.ActivityLevel, traitIDs)},
		{Factor: FactorExperience, Contribution: s.experienceMatch(q.ExperienceLevel, traitIDs)},
		{Factor: FactorTime, Contribution: s.timeMatch(q.TimeAvailable, traitIDs)},
	}

	total := s.w.Base
	for _, f := range factors {
		total += f.Contribution
	}
	if total > 1.0 {
		total = 1.0
	}

	return ScoreBreakdown{
		Base:    s.w.Base,
		Factors: factors,
		Total:   round2(total),
	}
}

// Factor 1: solapamiento de rasgos preferidos, proporcional al tamaño del set.
func (s *Scorer) traitOverlap(preferred, traitIDs []int64) float64 {
	if len(preferred) == 0 {
		return 0
	}
	overlap := 0
	for _, want := range preferred {
		for _, have := range traitIDs {
			if want == have {
				overlap++
				break
			}
		}
	}
	return round3(float64(overlap) / float64(len(preferred)) * s.w.TraitOverlap)
}

// Factor 2: todo-o-nada según el set calificante del nivel de actividad.
func (s *Scorer) activityMatch(level questionnaire.ActivityLevel, traitIDs []int64) float64 {
	if hasAny(traitIDs, s.sets.Activity[level]) {
		return s.w.Activity
	}
	return 0
}

// Factor 3: experiencia del dueño.
// none => crédito completo solo con algún rasgo "fácil".
// some => crédito parcial salvo que tenga algún rasgo "difícil".
// experienced => crédito completo incondicional.
func (s *Scorer) experienceMatch(level questionnaire.ExperienceLevel, traitIDs []int64) float64 {
	switch level {
	case questionnaire.ExperienceNone:
		if hasAny(traitIDs, s.sets.Easygoing) {
			return s.w.Experience
		}
	case questionnaire.ExperienceSome:
		if !hasAny(traitIDs, s.sets.Difficult) {
			return s.w.ExperienceSome
		}
	case questionnaire.ExperienceFull:
		return s.w.Experience
	}
	return 0
}

// Factor 4: tiempo disponible, espejo del factor 3.
func (s *Scorer) timeMatch(avail questionnaire.TimeAvailable, traitIDs []int64) float64 {
	switch avail {
	case questionnaire.TimeLittle:
		if hasAny(traitIDs, s.sets.LowMaintenance) {
			return s.w.Time
		}
	case questionnaire.TimeModerate:
		if hasAny(traitIDs, s.sets.Adaptable) {
			return s.w.TimeModerate
		}
	case questionnaire.TimePlenty:
		return s.w.Time
	}
	return 0
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
