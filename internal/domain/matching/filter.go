package matching

import (
	"time"

	"pet-match-engine/internal/domain/catalog"
	"pet-match-engine/internal/domain/questionnaire"
)

// Predicate es una condición componible sobre un candidato y sus rasgos.
// Reemplaza la concatenación de SQL dinámico del flujo original: el filtro
// se evalúa en memoria y es testeable sin store real.
type Predicate interface {
	Matches(p catalog.Pet, traitIDs []int64) bool
}

type predicateFunc func(p catalog.Pet, traitIDs []int64) bool

func (f predicateFunc) Matches(p catalog.Pet, traitIDs []int64) bool { return f(p, traitIDs) }

// And combina predicados; vacío => siempre true.
func And(preds ...Predicate) Predicate {
	return predicateFunc(func(p catalog.Pet, traitIDs []int64) bool {
		for _, pr := range preds {
			if !pr.Matches(p, traitIDs) {
				return false
			}
		}
		return true
	})
}

// SizePredicate mapea la preferencia de tamaño a rangos de peso (kg):
// small <= 10 < medium <= 25 < large.
func SizePredicate(size questionnaire.SizePreference) Predicate {
	return predicateFunc(func(p catalog.Pet, _ []int64) bool {
		switch size {
		case questionnaire.SizeSmall:
			return p.Weight <= 10
		case questionnaire.SizeMedium:
			return p.Weight > 10 && p.Weight <= 25
		case questionnaire.SizeLarge:
			return p.Weight > 25
		default:
			return true
		}
	})
}

// AgePredicate mapea la preferencia de edad a buckets contra now:
// young < 2 años, adult 2-8, senior > 8. Sin fecha de nacimiento solo
// califica "any".
func AgePredicate(age questionnaire.AgePreference, now time.Time) Predicate {
	twoYearsAgo := now.AddDate(-2, 0, 0)
	eightYearsAgo := now.AddDate(-8, 0, 0)

	return predicateFunc(func(p catalog.Pet, _ []int64) bool {
		if age == questionnaire.AgeAny || age == "" {
			return true
		}
		if p.Birthday == nil {
			return false
		}
		b := *p.Birthday
		switch age {
		case questionnaire.AgeYoung:
			return b.After(twoYearsAgo)
		case questionnaire.AgeAdult:
			return !b.After(twoYearsAgo) && b.After(eightYearsAgo)
		case questionnaire.AgeSenior:
			return !b.After(eightYearsAgo)
		default:
			return true
		}
	})
}

// HasAnyTrait exige al menos un rasgo del set.
func HasAnyTrait(set []int64) Predicate {
	return predicateFunc(func(_ catalog.Pet, traitIDs []int64) bool {
		return hasAny(traitIDs, set)
	})
}

func hasAny(traitIDs, set []int64) bool {
	for _, id := range traitIDs {
		for _, s := range set {
			if id == s {
				return true
			}
		}
	}
	return false
}

// BuildPredicate arma el filtro estricto para un cuestionario.
// Las condiciones por alergias y por niños son aditivas sobre rasgos;
// no vetan especies. is_adopted=false ya viene garantizado por el repo.
func BuildPredicate(q questionnaire.Questionnaire, sets TraitSets, now time.Time) Predicate {
	preds := []Predicate{
		SizePredicate(q.PreferredSize),
		AgePredicate(q.PreferredAge, now),
	}
	if q.Allergies {
		preds = append(preds, HasAnyTrait(sets.LowShedding))
	}
	if q.HasChildren {
		preds = append(preds, HasAnyTrait(sets.Gentle))
	}
	return And(preds...)
}

// FilterCandidates aplica el predicado; si el resultado queda vacío aplica
// el fallback: hasta limit candidatos disponibles en orden id asc, marcados
// como broadened. pets debe venir orden id asc y sin adoptados.
func FilterCandidates(pets []catalog.Pet, traits map[int64][]catalog.Trait, pred Predicate, limit int) (matched []catalog.Pet, broadened bool) {
	matched = make([]catalog.Pet, 0, len(pets))
	for _, p := range pets {
		if pred.Matches(p, traitIDList(traits[p.ID])) {
			matched = append(matched, p)
		}
	}
	if len(matched) > 0 {
		return matched, false
	}

	if limit <= 0 || limit > len(pets) {
		limit = len(pets)
	}
	return pets[:limit], true
}

func traitIDList(traits []catalog.Trait) []int64 {
	if len(traits) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(traits))
	for _, t := range traits {
		ids = append(ids, t.ID)
	}
	return ids
}
