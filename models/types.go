// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

// UpsertEntryRequest carries the body of POST /api/entries.
// Amounts are pointers so an explicit 0 is distinguishable from a missing
// field; zero is a valid amount.
type UpsertEntryRequest struct {
	UserID           string   `json:"userId"`
	PlantID          string   `json:"plantId"`
	WaterAmount      *float64 `json:"waterAmount"`
	FertilizerAmount *float64 `json:"fertilizerAmount"`
	Date             string   `json:"date"`
}

// PatchEntryRequest carries the body of PATCH /api/entries/:id.
// nil means "leave unchanged"; there is no way to clear a field.
type PatchEntryRequest struct {
	WaterAmount      *float64 `json:"waterAmount"`
	FertilizerAmount *float64 `json:"fertilizerAmount"`
	Date             *string  `json:"date"`
}

type CreatePlantRequest struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Nickname string `json:"nickname"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// Response types

type DeleteEntryResponse struct {
	OK bool `json:"ok"`
}

type DeletePlantResponse struct {
	Message string `json:"message"`
}

type IssuesResponse struct {
	TreatmentKey string   `json:"treatmentKey"`
	Issues       []string `json:"issues"`
}

type TreatmentResponse struct {
	PlantSlug    string `json:"plantSlug"`
	TreatmentKey string `json:"treatmentKey"`
	IssueKey     string `json:"issueKey"`
	Treatment    string `json:"treatment"`
}

type SummaryTotals struct {
	Water float64 `json:"water"`
	Fert  float64 `json:"fert"`
}

type DaySummary struct {
	DayKey          string    `json:"dayKey"`
	TotalWater      float64   `json:"totalWater"`
	TotalFertilizer float64   `json:"totalFertilizer"`
	Date            time.Time `json:"date"`
}

type SummaryResponse struct {
	PeriodDays int           `json:"periodDays"`
	Totals     SummaryTotals `json:"totals"`
	Days       []DaySummary  `json:"days"`
}

// Domain types

// DailyEntry is one water/fertilizer record. At most one exists per
// (userId, plantId, dayKey); the POST endpoint upserts on that key.
type DailyEntry struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	PlantID          string    `json:"plantId"`
	WaterAmount      float64   `json:"waterAmount"`
	FertilizerAmount float64   `json:"fertilizerAmount"`
	Date             time.Time `json:"date"`
	DayKey           string    `json:"dayKey"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UserPlant is a plant owned by a user, shown in "My Plants". Not related
// to the reference catalog; DailyEntry.PlantID is not validated against it.
type UserPlant struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Species   *string   `json:"species,omitempty"`
	Nickname  *string   `json:"nickname,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
