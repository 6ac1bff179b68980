package itineraryrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/triply-travel/itinerary-api/internal/adapters/postgres"
	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

// Repo is a Postgres implementation of itineraryrepo.Repository.
//
// The itinerary is stored as a jsonb document; the list columns are copied out
// so List does not have to decode every document.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, it domain.Itinerary) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	doc, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	s := it.Summary()
	_, err = r.pool.Exec(ctx, `
		INSERT INTO itineraries (
			id,
			destination,
			start_date,
			end_date,
			day_count,
			document,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		string(it.ID),
		s.Destination,
		s.StartDate,
		s.EndDate,
		s.DayCount,
		doc,
		it.CreatedAt.UTC(),
		it.UpdatedAt.UTC(),
	)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return itineraryrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Save(ctx context.Context, it domain.Itinerary) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	doc, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	s := it.Summary()
	// created_at is immutable.
	tag, err := r.pool.Exec(ctx, `
		UPDATE itineraries SET
			destination = $2,
			start_date = $3,
			end_date = $4,
			day_count = $5,
			document = $6,
			updated_at = $7
		WHERE id = $1
	`,
		string(it.ID),
		s.Destination,
		s.StartDate,
		s.EndDate,
		s.DayCount,
		doc,
		it.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return itineraryrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error) {
	if r.pool == nil {
		return domain.Itinerary{}, errors.New("nil postgres pool")
	}
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT document FROM itineraries WHERE id = $1`, string(id)).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, itineraryrepo.ErrNotFound
		}
		return domain.Itinerary{}, err
	}
	var it domain.Itinerary
	if err := json.Unmarshal(doc, &it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("decode itinerary %s: %w", id, err)
	}
	return it, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.ItinerarySummary, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, destination, start_date, end_date, day_count, created_at, updated_at
		FROM itineraries
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ItinerarySummary, 0)
	for rows.Next() {
		var (
			s  domain.ItinerarySummary
			id string
		)
		if err := rows.Scan(&id, &s.Destination, &s.StartDate, &s.EndDate, &s.DayCount, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.ID = domain.ItineraryID(id)
		s.CreatedAt = s.CreatedAt.UTC()
		s.UpdatedAt = s.UpdatedAt.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}
