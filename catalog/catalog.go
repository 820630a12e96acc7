// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/plants.json data/treatments.json
var defaultData embed.FS

// NameList accepts either a single JSON string or an array of strings.
// The reference data has both shapes for the Turkish name field.
type NameList []string

func (n *NameList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NameList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*n = NameList(list)
	return nil
}

type Names struct {
	TR NameList `json:"tr"`
	EN string   `json:"en,omitempty"`
}

// Plant is one reference catalog entry. Care is opaque structured data
// served as-is by the care endpoint.
type Plant struct {
	Slug         string         `json:"slug"`
	Names        Names          `json:"names"`
	TreatmentKey string         `json:"treatmentKey,omitempty"`
	Care         map[string]any `json:"care,omitempty"`
}

// issueSet keeps the issue keys of one treatment catalog entry in the
// order they appear in the source data.
type issueSet struct {
	order []string
	text  map[string]string
}

// Catalog holds the plant and treatment reference data. Built once at
// startup and never mutated afterwards; safe for concurrent reads.
type Catalog struct {
	plants     []Plant
	bySlug     map[string]Plant
	keyOrder   []string
	treatments map[string]issueSet
}

// Load builds a Catalog from the given JSON files. Empty paths fall back
// to the embedded default datasets.
func Load(plantsPath, treatmentsPath string) (*Catalog, error) {
	plantsRaw, err := readDataset(plantsPath, "data/plants.json")
	if err != nil {
		return nil, fmt.Errorf("loading plants: %w", err)
	}
	treatmentsRaw, err := readDataset(treatmentsPath, "data/treatments.json")
	if err != nil {
		return nil, fmt.Errorf("loading treatments: %w", err)
	}

	var plants []Plant
	if err := json.Unmarshal(plantsRaw, &plants); err != nil {
		return nil, fmt.Errorf("parsing plants: %w", err)
	}

	treatments, keyOrder, err := parseTreatments(treatmentsRaw)
	if err != nil {
		return nil, fmt.Errorf("parsing treatments: %w", err)
	}

	bySlug := make(map[string]Plant, len(plants))
	for _, p := range plants {
		bySlug[p.Slug] = p
	}

	return &Catalog{
		plants:     plants,
		bySlug:     bySlug,
		keyOrder:   keyOrder,
		treatments: treatments,
	}, nil
}

func readDataset(path, embedded string) ([]byte, error) {
	if path == "" {
		return defaultData.ReadFile(embedded)
	}
	return os.ReadFile(path)
}

// parseTreatments decodes the treatmentKey → issueKey → text mapping while
// preserving the key order of the source document. Order matters: the
// resolver's substring fallbacks return the first matching key, and the
// issues endpoint lists issues as stored.
func parseTreatments(data []byte) (map[string]issueSet, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, nil, err
	}

	treatments := make(map[string]issueSet)
	var keyOrder []string

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected treatment key, got %v", tok)
		}

		set, err := parseIssueSet(dec)
		if err != nil {
			return nil, nil, fmt.Errorf("treatment %q: %w", key, err)
		}

		if _, dup := treatments[key]; !dup {
			keyOrder = append(keyOrder, key)
		}
		treatments[key] = set
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, nil, err
	}
	return treatments, keyOrder, nil
}

func parseIssueSet(dec *json.Decoder) (issueSet, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return issueSet{}, err
	}

	set := issueSet{text: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return issueSet{}, err
		}
		issue, ok := tok.(string)
		if !ok {
			return issueSet{}, fmt.Errorf("expected issue key, got %v", tok)
		}
		var text string
		if err := dec.Decode(&text); err != nil {
			return issueSet{}, fmt.Errorf("issue %q: %w", issue, err)
		}
		if _, dup := set.text[issue]; !dup {
			set.order = append(set.order, issue)
		}
		set.text[issue] = text
	}

	return set, expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// Plants returns all reference plants. Callers must not modify the slice.
func (c *Catalog) Plants() []Plant {
	return c.plants
}

// PlantBySlug looks up one reference plant.
func (c *Catalog) PlantBySlug(slug string) (Plant, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

// Issues returns the issue keys of a treatment catalog entry, in stored order.
func (c *Catalog) Issues(treatmentKey string) ([]string, bool) {
	set, ok := c.treatments[treatmentKey]
	if !ok {
		return nil, false
	}
	return set.order, true
}

// Treatment returns the treatment text for one issue of a catalog entry.
func (c *Catalog) Treatment(treatmentKey, issueKey string) (string, bool) {
	set, ok := c.treatments[treatmentKey]
	if !ok {
		return "", false
	}
	text, ok := set.text[issueKey]
	return text, ok
}
