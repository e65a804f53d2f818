package classify

// criticalDomains are the high-profile government domains whose absence
// from a dataset is worth flagging. Order matters: the missing subset
// is reported in this order.
var criticalDomains = []string{
	"economie.gouv.fr", "interieur.gouv.fr", "education.gouv.fr",
	"sante.gouv.fr", "defense.gouv.fr", "justice.gouv.fr",
	"travail.gouv.fr", "culture.gouv.fr", "agriculture.gouv.fr",
	"service-public.fr", "impots.gouv.fr", "francetravail.fr",
	"gouvernement.fr", "elysee.fr", "assemblee-nationale.fr",
}

// MissingCritical returns the critical domains absent from the sorted
// accepted sequence, preserving the critical list's order.
func MissingCritical(domains []string) []string {
	present := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		present[d] = struct{}{}
	}

	var missing []string
	for _, d := range criticalDomains {
		if _, ok := present[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}
