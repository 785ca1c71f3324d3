package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-match-engine/internal/domain/matching"
)

type RecommendationsRepo struct {
	db *sql.DB
}

func NewRecommendationsRepo(db *sql.DB) *RecommendationsRepo {
	return &RecommendationsRepo{db: db}
}

// ReplaceForUser borra el set previo del usuario e inserta el nuevo en una
// sola transacción: o queda el ranking completo o queda el anterior.
func (r *RecommendationsRepo) ReplaceForUser(ctx context.Context, userID string, recs []matching.Recommendation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("recommendations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM recommendations
		WHERE user_id = $1
	`, userID); err != nil {
		return fmt.Errorf("recommendations: delete previous: %w", err)
	}

	for _, rec := range recs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recommendations (user_id, pet_id, match_score, created_at)
			VALUES ($1, $2, $3, $4)
		`, rec.UserID, rec.PetID, rec.MatchScore, rec.CreatedAt); err != nil {
			return fmt.Errorf("recommendations: insert: %w", err)
		}
	}

	return tx.Commit()
}

func (r *RecommendationsRepo) ListByUser(ctx context.Context, userID string) ([]matching.Recommendation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, pet_id, match_score, created_at
		FROM recommendations
		WHERE user_id = $1
		ORDER BY match_score DESC, pet_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Recommendation, 0)
	for rows.Next() {
		var rec matching.Recommendation
		if err := rows.Scan(&rec.UserID, &rec.PetID, &rec.MatchScore, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

var _ matching.RecommendationRepository = (*RecommendationsRepo)(nil)
