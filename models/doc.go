// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared
across the tracker service.

# JSON Conventions

All fields use camelCase JSON tags (userId, waterAmount, dayKey).
Optional response fields are pointers with omitempty; error bodies
are always the single-field shape {"error": message}.

# Pointer Request Fields

Amount fields on requests are *float64 so a missing field can be told
apart from a valid zero: watering with 0 ml is a real observation,
while an absent amount is a validation error on create and "leave
unchanged" on patch.
*/
package models
