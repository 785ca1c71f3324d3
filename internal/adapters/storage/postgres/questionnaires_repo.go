package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"pet-match-engine/internal/domain/questionnaire"
)

type QuestionnairesRepo struct {
	db *sql.DB
}

func NewQuestionnairesRepo(db *sql.DB) *QuestionnairesRepo {
	return &QuestionnairesRepo{db: db}
}

const questionnaireColumns = `
	id, user_id,
	living_environment, activity_level, experience_level, time_available,
	preferred_size, preferred_age, preferred_traits,
	allergies, has_children, has_other_pets,
	created_at
`

func (r *QuestionnairesRepo) GetByID(ctx context.Context, id string) (questionnaire.Questionnaire, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return questionnaire.Questionnaire{}, questionnaire.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+questionnaireColumns+`
		FROM questionnaires
		WHERE id = $1
	`, id)

	return scanQuestionnaire(row)
}

func (r *QuestionnairesRepo) LatestByUser(ctx context.Context, userID string) (questionnaire.Questionnaire, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return questionnaire.Questionnaire{}, questionnaire.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+questionnaireColumns+`
		FROM questionnaires
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)

	return scanQuestionnaire(row)
}

func scanQuestionnaire(row *sql.Row) (questionnaire.Questionnaire, error) {
	var q questionnaire.Questionnaire
	var userID sql.NullString
	var rawTraits []byte

	if err := row.Scan(
		&q.ID,
		&userID,
		&q.LivingEnvironment,
		&q.ActivityLevel,
		&q.ExperienceLevel,
		&q.TimeAvailable,
		&q.PreferredSize,
		&q.PreferredAge,
		&rawTraits,
		&q.Allergies,
		&q.HasChildren,
		&q.HasOtherPets,
		&q.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return questionnaire.Questionnaire{}, questionnaire.ErrNotFound
		}
		return questionnaire.Questionnaire{}, err
	}

	if userID.Valid {
		uid := userID.String
		q.UserID = &uid
	}

	// preferred_traits es jsonb laxo (números o strings); entradas
	// no numéricas se descartan sin error.
	if len(rawTraits) > 0 {
		var arr []any
		if err := json.Unmarshal(rawTraits, &arr); err != nil {
			return questionnaire.Questionnaire{}, fmt.Errorf("questionnaires: decode preferred_traits: %w", err)
		}
		q.PreferredTraits = questionnaire.ParseTraitIDs(arr)
	}

	return q, nil
}
