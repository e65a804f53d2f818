// Package classify holds the per-domain matching primitives: keyword
// category membership, critical-domain presence and IDN detection.
// Everything operates on already-normalized (lowercase) domains.
package classify

import "strings"

// Category labels a keyword-based domain classification. Categories are
// not mutually exclusive.
type Category string

const (
	Ministere     Category = "ministere"
	Region        Category = "region"
	Service       Category = "service"
	Prefecture    Category = "prefecture"
	Environnement Category = "environnement"
)

// PrimaryCategories are the four categories that feed the
// uniquely/overlap counters. Environnement is tracked as an independent
// total only and never contributes to overlap.
var PrimaryCategories = []Category{Ministere, Region, Service, Prefecture}

var ministereKeywords = []string{
	"agriculture", "culture", "defense", "education", "economie",
	"sante", "interieur", "justice", "travail", "environnement",
	"logement", "outre-mer", "fonction-publique", "sports", "budget",
}

var regionKeywords = []string{
	"alsace", "aquitaine", "bretagne", "corse", "normandie",
	"provence", "lorraine", "bourgogne", "centre", "auvergne",
	"franche-comte", "languedoc", "limousin", "midi-pyrenees",
	"picardie", "poitou-charentes", "rhone-alpes", "paca",
	"reunion", "guadeloupe", "martinique", "guyane", "iledefrance",
}

var serviceKeywords = []string{
	"service-public", "impots", "douane", "legifrance", "data.gouv",
	"moncompteformation", "francetravail", "ants", "ameli", "pole-emploi",
}

// Categories returns the full membership set of a domain across all
// five categories, keyed for O(1) lookup.
func Categories(domain string) map[Category]bool {
	set := make(map[Category]bool, 2)
	if containsAny(domain, ministereKeywords) {
		set[Ministere] = true
	}
	if containsAny(domain, regionKeywords) {
		set[Region] = true
	}
	if containsAny(domain, serviceKeywords) {
		set[Service] = true
	}
	if strings.Contains(domain, ".pref.") {
		set[Prefecture] = true
	}
	if MatchesEnvironnement(domain) {
		set[Environnement] = true
	}
	return set
}

// MatchesMinistere reports ministry keyword containment, independently
// of any other category.
func MatchesMinistere(domain string) bool { return containsAny(domain, ministereKeywords) }

// MatchesRegion reports region keyword containment.
func MatchesRegion(domain string) bool { return containsAny(domain, regionKeywords) }

// MatchesService reports public-service keyword containment.
func MatchesService(domain string) bool { return containsAny(domain, serviceKeywords) }

// MatchesPrefecture reports prefecture membership (".pref." label).
func MatchesPrefecture(domain string) bool { return strings.Contains(domain, ".pref.") }

// MatchesEnvironnement is the environnement membership predicate.
func MatchesEnvironnement(domain string) bool {
	return strings.Contains(domain, "developpement-durable") ||
		strings.Contains(domain, "ecologie.")
}

// MatchesDeveloppement feeds the développement raw total. Narrower than
// MatchesEnvironnement ("developpement-durable" only); the two are kept
// separate deliberately, the totals are redundant with the membership
// counters and must stay that way.
func MatchesDeveloppement(domain string) bool {
	return strings.Contains(domain, "developpement-durable")
}

func containsAny(domain string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(domain, kw) {
			return true
		}
	}
	return false
}
