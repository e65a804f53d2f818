package model

// Analysis aggregates everything the report needs about one accepted
// domain sequence. Computed once, read-only afterwards.
type Analysis struct {
	TotalDomains int
	RawLines     int
	Missing      int // RawLines - TotalDomains

	// Single-membership counters over the four primary categories,
	// plus the count of domains matching two or more of them.
	// Domains matching none of the four appear in neither.
	MinistereUniquement  int
	RegionUniquement     int
	ServiceUniquement    int
	PrefectureUniquement int
	Chevauchement        int

	// Independent raw totals, each keyword list tested on its own.
	// Not disjoint, and they intentionally disagree with the
	// uniquely-plus-overlap counters above.
	NombreMinistere     int
	NombreRegion        int
	NombreService       int
	NombrePrefecture    int
	NombreDeveloppement int

	LongestDomain   string
	ShortestDomain  string
	MeanLength      float64 // rune length, rounded to 1 decimal
	IDNCount        int     // internationalized (punycode / non-ASCII) domains
	MissingCritical []string
}
