package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ihsansencan/sitesgouv-go/internal/model"
)

// previewSize caps both the rejected-line examples and the domain
// preview in the report body.
const previewSize = 10

const sourceAttribution = "Source: https://www.data.gouv.fr/datasets/listes-des-sites-gouv-fr/"

// Build renders the multi-section French report as a single string.
// The full domain list is not part of the report body; WriteFull
// appends it when persisting.
func Build(a model.Analysis, src model.SourceData, now time.Time) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("🚀 RAPPORT D'ANALYSE DES DOMAINES DU GOUVERNEMENT FRANÇAIS")
	line(strings.Repeat("=", 60))
	line("📅 Date du Rapport: %s", now.Format("2006-01-02 15:04:05"))
	line("📁 Fichier Source: %s", src.Path)
	line("")

	line("📊 STATISTIQUES RÉSUMÉES")
	line("• Nombre de Lignes Source: %d", a.RawLines)
	line("• Domaines Traités: %d", a.TotalDomains)
	line("• Lignes Non Traitées: %d", a.Missing)
	line("")

	line("🏛️ RÉPARTITION PAR CATÉGORIE")
	line("• Uniquement Ministère: %d", a.MinistereUniquement)
	line("• Uniquement Région: %d", a.RegionUniquement)
	line("• Uniquement Service: %d", a.ServiceUniquement)
	line("• Uniquement Préfecture: %d", a.PrefectureUniquement)
	line("• Multi-Catégories: %d", a.Chevauchement)
	line("")

	line("📏 ANALYSE DE LONGUEUR DES DOMAINES")
	line("• Le Plus Long: %s", a.LongestDomain)
	line("• Le Plus Court: %s", a.ShortestDomain)
	line("• Moyenne: %s caractères", formatMean(a))
	if a.IDNCount > 0 {
		line("• Domaines Internationalisés (IDN): %d", a.IDNCount)
	}
	line("")

	if len(a.MissingCritical) > 0 {
		line("⚠️ DOMAINES CRITIQUES MANQUANTS")
		for _, d := range a.MissingCritical {
			line("• %s", d)
		}
		line("")
	}

	if len(src.Rejected) > 0 {
		line("❌ LIGNES NON TRAITÉES (Exemples)")
		shown := src.Rejected
		if len(shown) > previewSize {
			shown = shown[:previewSize]
		}
		for _, r := range shown {
			// Trailing "..." is literal, even for short lines.
			line("• Ligne %d: %s...", r.Number, r.Text)
		}
		if extra := len(src.Rejected) - previewSize; extra > 0 {
			line("• ... et %d lignes supplémentaires", extra)
		}
		line("")
	}

	line("🌐 10 Premiers Domaines")
	line(strings.Repeat("-", 30))
	preview := src.Domains
	if len(preview) > previewSize {
		preview = preview[:previewSize]
	}
	for i, d := range preview {
		line("%2d. %s", i+1, d)
	}
	line(".....")
	line(strings.Repeat("-", 30))
	line(sourceAttribution)
	line(strings.Repeat("-", 30))
	line("🌐 TOUS LES DOMAINES")
	b.WriteString(strings.Repeat("-", 30))

	return b.String()
}

// formatMean mirrors the report's historical formatting: an empty
// dataset renders the integer 0, anything else one decimal.
func formatMean(a model.Analysis) string {
	if a.TotalDomains == 0 {
		return "0"
	}
	return strconv.FormatFloat(a.MeanLength, 'f', 1, 64)
}

// WriteFull persists the report text followed by the complete accepted
// domain sequence, one per line, UTF-8. A write failure is returned to
// the caller and is not fatal to the run: the report was already shown
// on stdout by then.
func WriteFull(path, reportText string, domains []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(reportText); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for _, d := range domains {
		if _, err := fmt.Fprintf(w, "%s\n", d); err != nil {
			return fmt.Errorf("write domain list: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush report file: %w", err)
	}
	return nil
}
