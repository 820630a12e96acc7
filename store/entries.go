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

// EntryStore persists daily water/fertilizer entries.
type EntryStore struct {
	db *sql.DB
}

func NewEntryStore(db *sql.DB) *EntryStore {
	return &EntryStore{db: db}
}

// EntryUpsert is the validated input of an upsert. Date is the effective
// date; the caller defaults it to the current time when absent.
type EntryUpsert struct {
	UserID           string
	PlantID          string
	WaterAmount      float64
	FertilizerAmount float64
	Date             time.Time
}

// EntryPatch is a partial update. nil fields are left unchanged.
type EntryPatch struct {
	WaterAmount      *float64
	FertilizerAmount *float64
	Date             *time.Time
}

const entryColumns = "id, user_id, plant_id, water_amount, fertilizer_amount, date, day_key, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.DailyEntry, error) {
	var e models.DailyEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.PlantID,
		&e.WaterAmount, &e.FertilizerAmount,
		&e.Date, &e.DayKey,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Upsert writes the entry for (userID, plantID, dayKey of Date) in a single
// atomic statement: an existing row keeps its id and created_at and gets its
// amounts and date overwritten, otherwise a new row is inserted. Never a
// read-then-write sequence; the unique index is the conflict target, so
// concurrent requests for the same key cannot create duplicates.
func (s *EntryStore) Upsert(ctx context.Context, in EntryUpsert) (models.DailyEntry, error) {
	now := time.Now().UTC()
	date := in.Date.UTC()

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO entry (id, user_id, plant_id, water_amount, fertilizer_amount, date, day_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, plant_id, day_key) DO UPDATE SET
			water_amount = excluded.water_amount,
			fertilizer_amount = excluded.fertilizer_amount,
			date = excluded.date,
			updated_at = excluded.updated_at
		RETURNING `+entryColumns,
		uuid.NewString(), in.UserID, in.PlantID,
		in.WaterAmount, in.FertilizerAmount,
		date, DayKey(date), now, now,
	)

	e, err := scanEntry(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.DailyEntry{}, ErrConflict
		}
		return models.DailyEntry{}, fmt.Errorf("upserting entry: %w", err)
	}
	return e, nil
}

// List returns the user's entries, optionally restricted to an inclusive
// date range, newest first.
func (s *EntryStore) List(ctx context.Context, userID string, from, to *time.Time) ([]models.DailyEntry, error) {
	query := "SELECT " + entryColumns + " FROM entry WHERE user_id = $1"
	args := []any{userID}

	if from != nil {
		args = append(args, from.UTC())
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, to.UTC())
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	entries := []models.DailyEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return entries, nil
}

// Today returns the user's entry for the current UTC day, or nil when none
// exists. Absence is not an error.
func (s *EntryStore) Today(ctx context.Context, userID string, now time.Time) (*models.DailyEntry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM entry WHERE user_id = $1 AND day_key = $2 LIMIT 1",
		userID, DayKey(now),
	)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying today's entry: %w", err)
	}
	return &e, nil
}

// Summary groups the user's entries of the trailing window, the current
// UTC day and the days-1 days before it, by dayKey, summing amounts per
// day. The bound compares day keys so a whole calendar day is always in
// or out; days=1 covers all of today. Day keys sort lexicographically in
// chronological order, so groups come back oldest first.
func (s *EntryStore) Summary(ctx context.Context, userID string, days int, now time.Time) ([]models.DaySummary, models.SummaryTotals, error) {
	// AddDate, not a Duration multiply: days is caller-controlled and a
	// nanosecond Duration overflows int64 near 300k days.
	from := now.AddDate(0, 0, -(days - 1))

	rows, err := s.db.QueryContext(ctx, `
		SELECT day_key, SUM(water_amount), SUM(fertilizer_amount)
		FROM entry
		WHERE user_id = $1 AND day_key >= $2
		GROUP BY day_key
		ORDER BY day_key ASC`,
		userID, DayKey(from),
	)
	if err != nil {
		return nil, models.SummaryTotals{}, fmt.Errorf("aggregating entries: %w", err)
	}
	defer rows.Close()

	daySummaries := []models.DaySummary{}
	var totals models.SummaryTotals
	for rows.Next() {
		var d models.DaySummary
		if err := rows.Scan(&d.DayKey, &d.TotalWater, &d.TotalFertilizer); err != nil {
			return nil, models.SummaryTotals{}, fmt.Errorf("scanning day summary: %w", err)
		}
		// Midnight UTC of the day bucket. Selecting MIN(date) instead
		// would scan as a string on sqlite: aggregate expressions carry
		// no column decltype, so the driver cannot return time.Time.
		d.Date, _ = time.Parse("2006-01-02", d.DayKey)
		daySummaries = append(daySummaries, d)
		totals.Water += d.TotalWater
		totals.Fert += d.TotalFertilizer
	}
	if err := rows.Err(); err != nil {
		return nil, models.SummaryTotals{}, fmt.Errorf("aggregating entries: %w", err)
	}
	return daySummaries, totals, nil
}

// Patch updates the provided fields of the entry addressed by id. The day
// bucket (day_key) is never recomputed here, even when date changes.
func (s *EntryStore) Patch(ctx context.Context, id string, p EntryPatch) (models.DailyEntry, error) {
	var sets []string
	var args []any

	if p.WaterAmount != nil {
		args = append(args, *p.WaterAmount)
		sets = append(sets, fmt.Sprintf("water_amount = $%d", len(args)))
	}
	if p.FertilizerAmount != nil {
		args = append(args, *p.FertilizerAmount)
		sets = append(sets, fmt.Sprintf("fertilizer_amount = $%d", len(args)))
	}
	if p.Date != nil {
		args = append(args, p.Date.UTC())
		sets = append(sets, fmt.Sprintf("date = $%d", len(args)))
	}

	args = append(args, time.Now().UTC())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := "UPDATE entry SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)) + entryColumns

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return models.DailyEntry{}, ErrNotFound
	}
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("patching entry: %w", err)
	}
	return e, nil
}

// Delete removes the entry addressed by id. Absence is ErrNotFound.
func (s *EntryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM entry WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
