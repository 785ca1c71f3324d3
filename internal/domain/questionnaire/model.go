package questionnaire

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("questionnaire not found")
)

// LivingEnvironment define el entorno de vivienda del usuario.
// @Enum apartment, house, rural
type LivingEnvironment string

const (
	LivingApartment LivingEnvironment = "apartment"
	LivingHouse     LivingEnvironment = "house"
	LivingRural     LivingEnvironment = "rural"
)

// ActivityLevel define el nivel de actividad del usuario.
// @Enum low, medium, high
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// ExperienceLevel define la experiencia previa con mascotas.
// @Enum none, some, experienced
type ExperienceLevel string

const (
	ExperienceNone ExperienceLevel = "none"
	ExperienceSome ExperienceLevel = "some"
	ExperienceFull ExperienceLevel = "experienced"
)

// TimeAvailable define el tiempo disponible para cuidar una mascota.
// @Enum little, moderate, plenty
type TimeAvailable string

const (
	TimeLittle   TimeAvailable = "little"
	TimeModerate TimeAvailable = "moderate"
	TimePlenty   TimeAvailable = "plenty"
)

// SizePreference define el tamaño preferido.
// @Enum small, medium, large, any
type SizePreference string

const (
	SizeSmall  SizePreference = "small"
	SizeMedium SizePreference = "medium"
	SizeLarge  SizePreference = "large"
	SizeAny    SizePreference = "any"
)

// AgePreference define la edad preferida.
// @Enum young, adult, senior, any
type AgePreference string

const (
	AgeYoung  AgePreference = "young"
	AgeAdult  AgePreference = "adult"
	AgeSenior AgePreference = "senior"
	AgeAny    AgePreference = "any"
)

// Questionnaire es el input inmutable del motor de matching.
// El intake (fuera de este servicio) valida y persiste; acá solo se lee.
type Questionnaire struct {
	ID     string
	UserID *string // nil = envío anónimo

	LivingEnvironment LivingEnvironment
	ActivityLevel     ActivityLevel
	ExperienceLevel   ExperienceLevel
	TimeAvailable     TimeAvailable
	PreferredSize     SizePreference
	PreferredAge      AgePreference

	// PreferredTraits es un set: sin duplicados, orden ascendente.
	PreferredTraits []int64

	Allergies    bool
	HasChildren  bool
	HasOtherPets bool

	CreatedAt time.Time
}

// ParseLivingEnvironment valida el enum en el borde; valores desconocidos => error.
func ParseLivingEnvironment(s string) (LivingEnvironment, error) {
	switch v := LivingEnvironment(strings.TrimSpace(s)); v {
	case LivingApartment, LivingHouse, LivingRural:
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch v := ActivityLevel(strings.TrimSpace(s)); v {
	case ActivityLow, ActivityMedium, ActivityHigh:
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch v := ExperienceLevel(strings.TrimSpace(s)); v {
	case ExperienceNone, ExperienceSome, ExperienceFull:
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseTimeAvailable(s string) (TimeAvailable, error) {
	switch v := TimeAvailable(strings.TrimSpace(s)); v {
	case TimeLittle, TimeModerate, TimePlenty:
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseSizePreference(s string) (SizePreference, error) {
	switch v := SizePreference(strings.TrimSpace(s)); v {
	case SizeSmall, SizeMedium, SizeLarge, SizeAny:
		return v, nil
	}
	return "", ErrInvalidInput
}

func ParseAgePreference(s string) (AgePreference, error) {
	switch v := AgePreference(strings.TrimSpace(s)); v {
	case AgeYoung, AgeAdult, AgeSenior, AgeAny:
		return v, nil
	}
	return "", ErrInvalidInput
}

// ParseTraitIDs normaliza preferred_traits desde un array JSON laxo
// (números o strings numéricos). Entradas no numéricas se ignoran,
// nunca son error; duplicados cuentan una sola vez.
func ParseTraitIDs(raw []any) []int64 {
	seen := map[int64]struct{}{}
	out := make([]int64, 0, len(raw))

	for _, v := range raw {
		var id int64
		switch t := v.(type) {
		case float64:
			id = int64(t)
		case int64:
			id = t
		case int:
			id = int64(t)
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
			if err != nil {
				continue
			}
			id = n
		default:
			continue
		}

		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
