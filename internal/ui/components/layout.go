package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/sidebarkit/internal/ui"
)

// fit clips or pads every line of content to exactly width columns. A
// positive height also clips or pads the number of rows.
func fit(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if content == "" {
		lines = lines[:0]
	}
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	if width < 0 {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// rows counts the lines of a rendered block; the empty block has none.
func rows(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// column renders the body of a sidebar panel: footers are pinned to the
// bottom of height and everything else flows from the top.
func column(children []ui.Renderable, ctx RenderContext, height int) string {
	var top, bottom []string
	for _, child := range children {
		view := render(child, ctx)
		if view == "" {
			continue
		}
		if _, ok := child.(*Footer); ok {
			bottom = append(bottom, view)
			continue
		}
		top = append(top, view)
	}

	head := strings.Join(top, "\n")
	foot := strings.Join(bottom, "\n")
	switch {
	case foot == "":
		return head
	case height <= 0 && head == "":
		return foot
	case height <= 0:
		return head + "\n" + foot
	}

	room := height - rows(foot)
	if room <= 0 {
		return fit(foot, -1, height)
	}
	head = fit(head, -1, room)
	return head + "\n" + foot
}
