// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DeclaredKeyDominates(t *testing.T) {
	c := loadCatalog(t, `[]`, `{
		"X": {"root_rot": "x"},
		"Aloe Vera": {"root_rot": "by name"}
	}`)

	// The declared key wins even when a name-based match also exists.
	key, ok := c.ResolveTreatmentKey(Plant{
		Slug:         "aloe-vera",
		Names:        Names{TR: NameList{"Aloe Vera"}, EN: "Aloe Vera"},
		TreatmentKey: "X",
	})
	require.True(t, ok)
	assert.Equal(t, "X", key)
}

func TestResolve_DeclaredKeyAbsentFallsThrough(t *testing.T) {
	c := loadCatalog(t, `[]`, `{"Aloe Vera": {"root_rot": "t"}}`)

	key, ok := c.ResolveTreatmentKey(Plant{
		Names:        Names{TR: NameList{"Aloe Vera"}},
		TreatmentKey: "Bilinmeyen",
	})
	require.True(t, ok)
	assert.Equal(t, "Aloe Vera", key)
}

func TestResolve_ExactTurkishName(t *testing.T) {
	c := loadCatalog(t, `[]`, `{
		"Aloe Vera (Aloe barbadensis)": {"root_rot": "long"},
		"Aloe Vera": {"root_rot": "exact"}
	}`)

	// Exact equality outranks containment even when a containing key
	// comes first in the document.
	key, ok := c.ResolveTreatmentKey(Plant{Names: Names{TR: NameList{"Aloe Vera"}}})
	require.True(t, ok)
	assert.Equal(t, "Aloe Vera", key)
}

func TestResolve_TurkishNameSubstring(t *testing.T) {
	c := loadCatalog(t, `[]`, `{"Aloe Vera (Aloe barbadensis)": {"root_rot": "t"}}`)

	key, ok := c.ResolveTreatmentKey(Plant{Names: Names{TR: NameList{"Aloe Vera"}}})
	require.True(t, ok)
	assert.Equal(t, "Aloe Vera (Aloe barbadensis)", key)
}

func TestResolve_EnglishNameSubstring(t *testing.T) {
	c := loadCatalog(t, `[]`, `{"Sarmaşık (English Ivy – Hedera helix)": {"leaf_drop": "t"}}`)

	key, ok := c.ResolveTreatmentKey(Plant{
		Names: Names{TR: NameList{"Duvar Sarmaşığı"}, EN: "English Ivy"},
	})
	require.True(t, ok)
	assert.Equal(t, "Sarmaşık (English Ivy – Hedera helix)", key)
}

func TestResolve_FirstMatchingKeyWins(t *testing.T) {
	c := loadCatalog(t, `[]`, `{
		"Mini Kaktüs Bahçesi": {"root_rot": "first"},
		"Kaktüs Terraryumu": {"root_rot": "second"}
	}`)

	key, ok := c.ResolveTreatmentKey(Plant{Names: Names{TR: NameList{"Kaktüs"}}})
	require.True(t, ok)
	assert.Equal(t, "Mini Kaktüs Bahçesi", key)
}

func TestResolve_NoNormalization(t *testing.T) {
	c := loadCatalog(t, `[]`, `{"Aloe Vera": {"root_rot": "t"}}`)

	// Matching is raw: a case mismatch does not resolve.
	_, ok := c.ResolveTreatmentKey(Plant{Names: Names{TR: NameList{"aloe vera"}}})
	assert.False(t, ok)
}

func TestResolve_NotFound(t *testing.T) {
	c := loadCatalog(t, `[]`, `{"Orkide": {"bud_drop": "t"}}`)

	_, ok := c.ResolveTreatmentKey(Plant{
		Names: Names{TR: NameList{"Lavanta"}, EN: "Lavender"},
	})
	assert.False(t, ok)

	// No names, no declared key.
	_, ok = c.ResolveTreatmentKey(Plant{})
	assert.False(t, ok)
}
