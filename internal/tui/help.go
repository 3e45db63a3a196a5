package tui

import "strings"

type keyHint struct {
	key, desc string
}

var footerHints = []keyHint{
	{"tab/→", "next chart"},
	{"shift+tab/←", "previous"},
	{"s", "summary"},
	{"?", "help"},
	{"q", "quit"},
}

func renderFooter(w int) string {
	parts := make([]string, 0, len(footerHints))
	for _, h := range footerHints {
		parts = append(parts, helpKeyStyle.Render(h.key)+" "+helpStyle.Render(h.desc))
	}
	return truncateLine(" "+strings.Join(parts, helpStyle.Render("  ·  ")), w)
}

// renderHelp lists the keybindings and what each chart shows.
func renderHelp(tabs []Tab) string {
	lines := []string{
		headerBrandStyle.Render("  daogrowth"),
		"",
		valueStyle.Render("  Charts"),
	}
	for _, tab := range tabs {
		desc := tab.Description
		if desc == "" {
			desc = tab.Spec.Title
		}
		lines = append(lines, "  "+helpKeyStyle.Render(tab.Name)+"  "+helpStyle.Render(desc))
	}
	lines = append(lines, "", valueStyle.Render("  Keys"))
	for _, h := range footerHints {
		lines = append(lines, "  "+helpKeyStyle.Render(h.key)+"  "+helpStyle.Render(h.desc))
	}
	lines = append(lines, "", dimStyle.Render("  press any key to close"))
	return strings.Join(lines, "\n")
}
