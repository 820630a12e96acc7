// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "strings"

// ResolveTreatmentKey maps a plant to a treatment catalog key. Strict
// priority, first match wins:
//
//  1. the plant's declared treatmentKey, if that key exists in the catalog
//  2. a catalog key exactly equal to the primary Turkish name
//  3. a catalog key containing the Turkish name as a substring
//     (e.g. "Sarmaşık (English Ivy – Hedera helix)")
//  4. a catalog key containing the English name as a substring
//
// Matching is raw equality/substring on the stored strings. No case
// folding or diacritic stripping is applied; the catalog keys are
// maintained to match the plant names as written.
func (c *Catalog) ResolveTreatmentKey(p Plant) (string, bool) {
	if p.TreatmentKey != "" {
		if _, ok := c.treatments[p.TreatmentKey]; ok {
			return p.TreatmentKey, true
		}
	}

	var trName string
	if len(p.Names.TR) > 0 {
		trName = p.Names.TR[0]
	}

	if trName != "" {
		for _, k := range c.keyOrder {
			if k == trName {
				return k, true
			}
		}
		for _, k := range c.keyOrder {
			if strings.Contains(k, trName) {
				return k, true
			}
		}
	}

	if p.Names.EN != "" {
		for _, k := range c.keyOrder {
			if strings.Contains(k, p.Names.EN) {
				return k, true
			}
		}
	}

	return "", false
}
