package matching

import (
	"reflect"
	"testing"

	"pet-match-engine/internal/domain/questionnaire"
)

func highEnergyQuestionnaire() questionnaire.Questionnaire {
	return questionnaire.Questionnaire{
		LivingEnvironment: questionnaire.LivingHouse,
		ActivityLevel:     questionnaire.ActivityHigh,
		ExperienceLevel:   questionnaire.ExperienceFull,
		TimeAvailable:     questionnaire.TimePlenty,
		PreferredSize:     questionnaire.SizeMedium,
		PreferredAge:      questionnaire.AgeAdult,
		PreferredTraits:   []int64{1, 13, 24},
	}
}

func TestScorer_FullMatchClampsToOne(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := highEnergyQuestionnaire()

	// candidato con traits {1,13}: overlap 2/3, activity ok (1 y 13 son
	// calificantes de high), experienced y plenty incondicionales
	bd := s.Score(q, []int64{1, 13})

	if got := bd.Factors[0]; got.Factor != FactorTraitOverlap || got.Contribution != 0.267 {
		t.Fatalf("trait overlap: expected 0.267, got %+v", got)
	}
	if got := bd.Factors[1]; got.Factor != FactorActivity || got.Contribution != 0.2 {
		t.Fatalf("activity: expected 0.2, got %+v", got)
	}
	if got := bd.Factors[2]; got.Factor != FactorExperience || got.Contribution != 0.2 {
		t.Fatalf("experience: expected 0.2, got %+v", got)
	}
	if got := bd.Factors[3]; got.Factor != FactorTime || got.Contribution != 0.2 {
		t.Fatalf("time: expected 0.2, got %+v", got)
	}
	if bd.Total != 1.0 {
		t.Fatalf("expected total clamped to 1.0, got %v", bd.Total)
	}
}

func TestScorer_NoTraits(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := highEnergyQuestionnaire()

	bd := s.Score(q, nil)

	// overlap 0, activity 0, experienced 0.2, plenty 0.2
	if bd.Total != 0.9 {
		t.Fatalf("expected 0.9, got %v", bd.Total)
	}
	if bd.Factors[0].Contribution != 0 || bd.Factors[1].Contribution != 0 {
		t.Fatalf("expected zero trait/activity contributions, got %+v", bd.Factors)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := highEnergyQuestionnaire()

	a := s.Score(q, []int64{1, 13, 9})
	b := s.Score(q, []int64{1, 13, 9})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same inputs produced different breakdowns:\n%+v\n%+v", a, b)
	}
}

func TestScorer_OverlapRatio(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := highEnergyQuestionnaire()
	q.PreferredTraits = []int64{1, 13, 24, 30}

	// overlap 2/4 de un máximo 0.4 => 0.2
	bd := s.Score(q, []int64{1, 13})
	if bd.Factors[0].Contribution != 0.2 {
		t.Fatalf("expected 0.2 overlap contribution, got %v", bd.Factors[0].Contribution)
	}
}

func TestScorer_OverlapMonotonic(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := highEnergyQuestionnaire()

	base := s.Score(q, []int64{1, 13}).Factors[0].Contribution

	// agregar al candidato un rasgo que ya está en preferred_traits
	// nunca baja el aporte de overlap
	after := s.Score(q, []int64{1, 13, 24}).Factors[0].Contribution
	if after < base {
		t.Fatalf("adding an owned trait decreased overlap: %v -> %v", base, after)
	}
}

func TestScorer_ExperienceLevels(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := highEnergyQuestionnaire()

	q.ExperienceLevel = questionnaire.ExperienceNone
	if got := s.Score(q, []int64{2}).Factors[2].Contribution; got != 0.2 {
		t.Fatalf("none + easygoing trait: expected 0.2, got %v", got)
	}
	if got := s.Score(q, []int64{6}).Factors[2].Contribution; got != 0 {
		t.Fatalf("none without easygoing trait: expected 0, got %v", got)
	}

	q.ExperienceLevel = questionnaire.ExperienceSome
	if got := s.Score(q, []int64{2}).Factors[2].Contribution; got != 0.15 {
		t.Fatalf("some without difficult trait: expected 0.15, got %v", got)
	}
	if got := s.Score(q, []int64{6}).Factors[2].Contribution; got != 0 {
		t.Fatalf("some with difficult trait: expected 0, got %v", got)
	}
}

func TestScorer_TimeLevels(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := highEnergyQuestionnaire()

	q.TimeAvailable = questionnaire.TimeLittle
	if got := s.Score(q, []int64{3}).Factors[3].Contribution; got != 0.2 {
		t.Fatalf("little + low-maintenance trait: expected 0.2, got %v", got)
	}
	if got := s.Score(q, []int64{1}).Factors[3].Contribution; got != 0 {
		t.Fatalf("little without low-maintenance trait: expected 0, got %v", got)
	}

	q.TimeAvailable = questionnaire.TimeModerate
	if got := s.Score(q, []int64{9}).Factors[3].Contribution; got != 0.15 {
		t.Fatalf("moderate + adaptable trait: expected 0.15, got %v", got)
	}
}

func TestScorer_Bounds(t *testing.T) {
	s := NewScorer(DefaultConfig())

	traitSets := [][]int64{nil, {1}, {1, 13}, {1, 13, 24}, {2, 6, 9, 16, 29}, {99}}
	for _, activity := range []questionnaire.ActivityLevel{questionnaire.ActivityLow, questionnaire.ActivityMedium, questionnaire.ActivityHigh} {
		for _, exp := range []questionnaire.ExperienceLevel{questionnaire.ExperienceNone, questionnaire.ExperienceSome, questionnaire.ExperienceFull} {
			for _, avail := range []questionnaire.TimeAvailable{questionnaire.TimeLittle, questionnaire.TimeModerate, questionnaire.TimePlenty} {
				for _, ts := range traitSets {
					q := highEnergyQuestionnaire()
					q.ActivityLevel = activity
					q.ExperienceLevel = exp
					q.TimeAvailable = avail

					bd := s.Score(q, ts)
					if bd.Total < 0.5 || bd.Total > 1.0 {
						t.Fatalf("score out of bounds: %v (activity=%s exp=%s time=%s traits=%v)",
							bd.Total, activity, exp, avail, ts)
					}
				}
			}
		}
	}
}
