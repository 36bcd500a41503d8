package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/IoTIVP/data-veil/models"
)

const dashboardShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Data Veil</title>
<style>
body { font-family: monospace; max-width: 72rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.3rem 0.6rem; text-align: left; }
</style>
</head>
<body>
%s
</body>
</html>
`

// handleDashboard renders the run report as HTML
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	runs, err := s.service.RecentRuns(r.Context(), 50)
	if err != nil {
		s.respondError(w, err)
		return
	}

	report := s.buildReport(runs)
	rendered := renderMarkdown([]byte(report))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, dashboardShell, rendered)
}

// buildReport assembles the dashboard as markdown so the same text could be
// dropped into a README or an issue verbatim.
func (s *Server) buildReport(runs []models.VeilRun) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Data Veil Run Report\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", time.Now().UTC().Format(time.RFC3339))

	fmt.Fprintf(&b, "## Sensors\n\n")
	for _, name := range s.service.Sensors() {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	fmt.Fprintf(&b, "\n## Profiles\n\n")

	sensors := s.service.Sensors()
	fmt.Fprintf(&b, "| Profile | %s |\n", strings.Join(sensors, " | "))
	fmt.Fprintf(&b, "|---|%s|\n", strings.Repeat("---|", len(sensors)))
	for _, name := range s.service.Profiles() {
		cells := make([]string, len(sensors))
		for i, sensorName := range sensors {
			strength, err := s.service.ProfileStrength(name, sensorName)
			if err != nil {
				cells[i] = "?"
				continue
			}
			cells[i] = fmt.Sprintf("%.2f", strength)
		}
		fmt.Fprintf(&b, "| %s | %s |\n", name, strings.Join(cells, " | "))
	}

	fmt.Fprintf(&b, "\n## Recent Runs\n\n")
	if len(runs) == 0 {
		fmt.Fprintf(&b, "_No runs recorded yet._\n")
		return b.String()
	}

	fmt.Fprintf(&b, "| Time | Sensor | Profile | Strength | Seed | Samples | Residual |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|---|\n")
	for _, run := range runs {
		seed := "-"
		if run.Seed != nil {
			seed = fmt.Sprintf("%d", *run.Seed)
		}
		profile := run.Profile
		if profile == "" {
			profile = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f | %s | %d | %.4f |\n",
			run.CreatedAt.Format(time.RFC3339), run.Sensor, profile, run.Strength, seed, run.Samples, run.Residual)
	}
	return b.String()
}

// renderMarkdown converts report markdown to HTML.
func renderMarkdown(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(md)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
