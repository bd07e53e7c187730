package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/textscope/textscope/internal/dup"
)

// Detail renders each block as a fenced markdown snippet with its
// occurrences, styled for the terminal. Falls back to plain markdown when
// the renderer cannot be set up.
func Detail(w io.Writer, blocks []dup.Block) {
	var sb strings.Builder
	for i, b := range blocks {
		fmt.Fprintf(&sb, "## Block %d (%d occurrences)\n\n", i+1, len(b.Locations))
		sb.WriteString("```\n")
		sb.WriteString(b.Content)
		sb.WriteString("\n```\n\n")
		for _, loc := range b.Locations {
			fmt.Fprintf(&sb, "- `%s:%d`\n", loc.File, loc.Line)
		}
		sb.WriteString("\n---\n\n")
	}
	markdown := sb.String()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Fprint(w, markdown)
		return
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		fmt.Fprint(w, markdown)
		return
	}
	fmt.Fprint(w, out)
}
