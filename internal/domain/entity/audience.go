package entity

import (
	"strings"
)

// CategoryBloodDonation is the alert category whose audience may be narrowed by blood group.
const CategoryBloodDonation = "blood_donation"

// AudienceScope names the geographic communities an operation targets.
// A recipient is in scope when its locality matches any of Localities or its town matches Town.
type AudienceScope struct {
	Localities []string `json:"localities"`
	Town       string   `json:"town"`
}

// AudienceFilters narrows a scope. Zero values mean "no restriction".
type AudienceFilters struct {
	ProfessionCategories []string `json:"profession_categories"`
	BloodGroup           string   `json:"blood_group"`
}

// NormalizeTerm folds a user-entered geographic or category name for comparison.
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ScopeFromTerms merges locality lists (own locality, explicit targets, selected
// communities) into one scope. Blank and duplicate terms are dropped.
func ScopeFromTerms(town string, localityLists ...[]string) AudienceScope {
	seen := make(map[string]struct{})
	scope := AudienceScope{Town: strings.TrimSpace(town)}

	for _, list := range localityLists {
		for _, locality := range list {
			key := NormalizeTerm(locality)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			scope.Localities = append(scope.Localities, strings.TrimSpace(locality))
		}
	}

	return scope
}

// NormalizedLocalities returns the folded, de-duplicated locality terms.
func (s AudienceScope) NormalizedLocalities() []string {
	out := make([]string, 0, len(s.Localities))
	seen := make(map[string]struct{}, len(s.Localities))
	for _, locality := range s.Localities {
		key := NormalizeTerm(locality)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

// IsEmpty reports whether the scope names no locality and no town.
func (s AudienceScope) IsEmpty() bool {
	return len(s.NormalizedLocalities()) == 0 && NormalizeTerm(s.Town) == ""
}

// Contains reports whether the recipient lives inside the scope.
func (s AudienceScope) Contains(r *Recipient) bool {
	locality := NormalizeTerm(r.Locality)
	if locality != "" {
		for _, term := range s.Localities {
			if NormalizeTerm(term) == locality {
				return true
			}
		}
	}

	town := NormalizeTerm(s.Town)

	return town != "" && NormalizeTerm(r.Town) == town
}

// ForAlert builds filters for an alert. The blood group only narrows blood-donation alerts.
func ForAlert(category, bloodGroup string) AudienceFilters {
	if NormalizeTerm(category) != CategoryBloodDonation {
		return AudienceFilters{}
	}

	return AudienceFilters{BloodGroup: strings.TrimSpace(bloodGroup)}
}

// NormalizedProfessions returns the folded profession allow-list.
func (f AudienceFilters) NormalizedProfessions() []string {
	out := make([]string, 0, len(f.ProfessionCategories))
	for _, p := range f.ProfessionCategories {
		if key := NormalizeTerm(p); key != "" {
			out = append(out, key)
		}
	}

	return out
}

// Allows reports whether the recipient passes the profession and blood-group filters.
func (f AudienceFilters) Allows(r *Recipient) bool {
	if professions := f.NormalizedProfessions(); len(professions) > 0 {
		category := NormalizeTerm(r.ProfessionCategory)
		allowed := false
		for _, p := range professions {
			if p == category {
				allowed = true

				break
			}
		}
		if !allowed {
			return false
		}
	}

	// Same rule as the directory query: trimmed and upper-cased on both sides.
	if blood := strings.ToUpper(strings.TrimSpace(f.BloodGroup)); blood != "" {
		return strings.ToUpper(strings.TrimSpace(r.BloodGroup)) == blood
	}

	return true
}
