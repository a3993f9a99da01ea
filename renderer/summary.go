package renderer

// RenderSummary renders the Summary struct to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title": "summary_title.md",
		"summary_table": "summary_table.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
