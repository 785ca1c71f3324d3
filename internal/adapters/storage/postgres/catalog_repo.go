package postgres

import (
	"context"
	"database/sql"

	"pet-match-engine/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListAvailable(ctx context.Context) ([]catalog.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, species, gender, weight,
			birthday, is_adopted, store_location
		FROM pets
		WHERE is_adopted = FALSE
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Pet, 0)
	for rows.Next() {
		var p catalog.Pet
		var bd sql.NullTime
		var loc sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Species,
			&p.Gender,
			&p.Weight,
			&bd,
			&p.IsAdopted,
			&loc,
		); err != nil {
			return nil, err
		}

		if bd.Valid {
			t := bd.Time
			// birthday es date; pgx lo mapea a medianoche UTC
			p.Birthday = &t
		}
		if loc.Valid {
			p.StoreLocation = loc.String
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *CatalogRepo) TraitsByPets(ctx context.Context, petIDs []int64) (map[int64][]catalog.Trait, error) {
	if len(petIDs) == 0 {
		return map[int64][]catalog.Trait{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT pt.pet_id, t.id, t.tag, t.description
		FROM pet_traits pt
		JOIN traits t ON t.id = pt.trait_id
		WHERE pt.pet_id = ANY($1)
		ORDER BY pt.pet_id ASC, pt.trait_id ASC
	`, petIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]catalog.Trait, len(petIDs))
	for rows.Next() {
		var petID int64
		var t catalog.Trait
		if err := rows.Scan(&petID, &t.ID, &t.Tag, &t.Description); err != nil {
			return nil, err
		}
		out[petID] = append(out[petID], t)
	}

	return out, rows.Err()
}

func (r *CatalogRepo) ListTraits(ctx context.Context) ([]catalog.Trait, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tag, description
		FROM traits
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Trait, 0)
	for rows.Next() {
		var t catalog.Trait
		if err := rows.Scan(&t.ID, &t.Tag, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}
