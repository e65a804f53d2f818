package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ihsansencan/sitesgouv-go/internal/analyzer"
	"github.com/ihsansencan/sitesgouv-go/internal/loader"
	"github.com/ihsansencan/sitesgouv-go/internal/logging"
	"github.com/ihsansencan/sitesgouv-go/internal/model"
	"github.com/ihsansencan/sitesgouv-go/internal/report"
)

func main() {
	// The filenames are fixed: no flags, options or environment
	// variables are consumed. Known limitation of the current design.
	cfg := model.DefaultConfig()
	log := logging.NewLogger(cfg.Verbose)

	fmt.Println("🔍 Analyse des Domaines du Gouvernement Français en Cours...")

	fmt.Println("📁 Chargement des domaines...")
	start := time.Now()

	src, err := loader.LoadFromFile(cfg.SourceFile)
	if err != nil {
		log.Error("failed to load domains", "err", err, "path", cfg.SourceFile)
		fmt.Printf("❌ Erreur de lecture du fichier: %v\n", err)
		os.Exit(1)
	}

	log.Info("domains loaded",
		"count", len(src.Domains),
		"raw_lines", src.RawLines,
		"rejected", len(src.Rejected),
	)

	fmt.Println("📊 Analyse en cours...")
	analysis := analyzer.Compute(src.Domains, src.RawLines)

	log.Info("analysis finished",
		"total", analysis.TotalDomains,
		"missing", analysis.Missing,
		"overlap", analysis.Chevauchement,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	text := report.Build(analysis, src, time.Now())

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println(text)
	fmt.Println(strings.Repeat("=", 30))

	fmt.Println("\n💾 Sauvegarde du rapport dans un fichier...")
	if err := report.WriteFull(cfg.ReportFile, text, src.Domains); err != nil {
		// Non-fatal: the report was already printed above.
		log.Error("failed to write report file", "err", err, "path", cfg.ReportFile)
		fmt.Printf("❌ Erreur de sauvegarde du rapport: %v\n", err)
	} else {
		fmt.Printf("✅ Rapport complet sauvegardé: %s\n", cfg.ReportFile)
	}

	fmt.Println("\n🎉 ANALYSE TERMINÉE!")
	fmt.Printf("• Traités: %d / %d domaines\n", analysis.TotalDomains, analysis.RawLines)
	fmt.Printf("• Manquants: %d lignes\n", analysis.Missing)
	if analysis.Missing > 0 {
		fmt.Printf("• Détails disponibles dans: %s\n", cfg.ReportFile)
	}
}
