package analyzer

import (
	"math"
	"unicode/utf8"

	"github.com/ihsansencan/sitesgouv-go/internal/classify"
	"github.com/ihsansencan/sitesgouv-go/internal/model"
)

// Compute aggregates one Analysis from the sorted accepted sequence and
// the raw line count. Pure function, no side effects; an empty sequence
// yields zero values instead of failing.
func Compute(domains []string, rawLines int) model.Analysis {
	a := model.Analysis{
		TotalDomains: len(domains),
		RawLines:     rawLines,
		Missing:      rawLines - len(domains),
	}

	var (
		lengthSum   int
		longestLen  = -1
		shortestLen = math.MaxInt
	)

	for _, d := range domains {
		n := utf8.RuneCountInString(d)
		lengthSum += n

		// Strict comparisons: on ties the first domain in sorted
		// order keeps the extremum.
		if n > longestLen {
			longestLen = n
			a.LongestDomain = d
		}
		if n < shortestLen {
			shortestLen = n
			a.ShortestDomain = d
		}

		countMembership(&a, d)
		countTotals(&a, d)

		if classify.IsIDN(d) {
			a.IDNCount++
		}
	}

	if len(domains) > 0 {
		mean := float64(lengthSum) / float64(len(domains))
		// Half away from zero, one decimal.
		a.MeanLength = math.Round(mean*10) / 10
	}

	a.MissingCritical = classify.MissingCritical(domains)

	return a
}

// countMembership updates the uniquely/overlap counters. Only the four
// primary categories participate; environnement membership is excluded
// from this computation even when present.
func countMembership(a *model.Analysis, domain string) {
	set := classify.Categories(domain)

	primary := 0
	var only classify.Category
	for _, c := range classify.PrimaryCategories {
		if set[c] {
			primary++
			only = c
		}
	}

	switch {
	case primary == 1:
		switch only {
		case classify.Ministere:
			a.MinistereUniquement++
		case classify.Region:
			a.RegionUniquement++
		case classify.Service:
			a.ServiceUniquement++
		case classify.Prefecture:
			a.PrefectureUniquement++
		}
	case primary > 1:
		a.Chevauchement++
	}
}

// countTotals updates the independent raw totals. Each predicate is
// tested on its own, so a single domain may increment several counters;
// the développement total uses the narrower predicate on purpose.
func countTotals(a *model.Analysis, domain string) {
	if classify.MatchesMinistere(domain) {
		a.NombreMinistere++
	}
	if classify.MatchesRegion(domain) {
		a.NombreRegion++
	}
	if classify.MatchesService(domain) {
		a.NombreService++
	}
	if classify.MatchesPrefecture(domain) {
		a.NombrePrefecture++
	}
	if classify.MatchesDeveloppement(domain) {
		a.NombreDeveloppement++
	}
}
