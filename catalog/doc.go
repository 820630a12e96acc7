// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the static plant reference data: the plant list,
per-plant care guidance, and the treatment knowledge base.

# Datasets

Two JSON documents back the catalog:

  - plants.json: reference plants keyed by slug, with Turkish and
    English names, optional care guidance, and an optional declared
    treatment key
  - treatments.json: treatment keys mapped to issue keys mapped to
    treatment text

Both ship embedded in the binary; Load accepts file paths to override
either one at startup:

	cat, err := catalog.Load("", "")              // embedded data
	cat, err := catalog.Load("plants.json", "")   // custom plants

The catalog is immutable after Load and safe for concurrent reads.

# Document Order

Treatment keys and issue keys keep the order they appear in the JSON
document. Resolution fallbacks and the issues listing both depend on
that order, so treatments.json is parsed token by token instead of
into a plain map.

# Treatment Resolution

Plants and treatment keys are linked loosely: a plant may declare its
key outright, or the key is found by matching the plant's names
against the treatment keys. See ResolveTreatmentKey for the exact
priority. Matching is literal; no case folding or accent stripping is
applied, since the datasets are curated together.

# Name Shapes

The Turkish name field appears in the source data both as a plain
string and as an array of synonyms. NameList accepts either shape and
always exposes a slice.
*/
package catalog
