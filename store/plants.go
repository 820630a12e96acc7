// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oykukmnGlad/ROOTEAM/models"
)

// PlantStore persists user-owned plants.
type PlantStore struct {
	db *sql.DB
}

func NewPlantStore(db *sql.DB) *PlantStore {
	return &PlantStore{db: db}
}

// PlantCreate is the validated input of a create. Optional fields may be
// empty; all fields are trimmed before storage.
type PlantCreate struct {
	UserID   string
	Name     string
	Species  string
	Nickname string
	Location string
	Notes    string
}

const plantColumns = "id, user_id, name, species, nickname, location, notes, created_at, updated_at"

func scanPlant(row rowScanner) (models.UserPlant, error) {
	var p models.UserPlant
	var species, nickname, location, notes sql.NullString
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name,
		&species, &nickname, &location, &notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.UserPlant{}, err
	}
	p.Species = fromNull(species)
	p.Nickname = fromNull(nickname)
	p.Location = fromNull(location)
	p.Notes = fromNull(notes)
	return p, nil
}

func fromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

// Create inserts a new user plant and returns it with generated identity
// and timestamps.
func (s *PlantStore) Create(ctx context.Context, in PlantCreate) (models.UserPlant, error) {
	now := time.Now().UTC()

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO user_plant (id, user_id, name, species, nickname, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+plantColumns,
		uuid.NewString(), in.UserID, strings.TrimSpace(in.Name),
		nullable(in.Species), nullable(in.Nickname), nullable(in.Location), nullable(in.Notes),
		now, now,
	)

	p, err := scanPlant(row)
	if err != nil {
		return models.UserPlant{}, fmt.Errorf("creating plant: %w", err)
	}
	return p, nil
}

// List returns all plants of a user, oldest first.
func (s *PlantStore) List(ctx context.Context, userID string) ([]models.UserPlant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+plantColumns+" FROM user_plant WHERE user_id = $1 ORDER BY created_at ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	defer rows.Close()

	plants := []models.UserPlant{}
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plant: %w", err)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	return plants, nil
}

// Delete removes a plant by id. Deleting an unknown id is not an error;
// the endpoint is deliberately idempotent, unlike entry deletion.
func (s *PlantStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM user_plant WHERE id = $1", id); err != nil {
		return fmt.Errorf("deleting plant: %w", err)
	}
	return nil
}
