package renderer

// RenderWeeklys renders the Weeklys struct to a markdown string.
func RenderWeeklys(w *Weeklys) string {
	partials := map[string]string{
		"weeklys_title": "weeklys_title.md",
		"weeklys_table": "weeklys_table.md",
	}
	return renderTemplate("weeklys", "weeklys.md", partials, w)
}
