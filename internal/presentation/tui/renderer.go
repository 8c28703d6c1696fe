package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/hsmyc/hform-validator/pkg/schema"
)

// Renderer pretty-prints result trees for the terminal.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer creates a renderer using the detected terminal color profile.
func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

// Render writes the result tree to w, one field per line, nested trees
// indented. Keys are sorted for stable output.
func (r *Renderer) Render(w io.Writer, res schema.Result) error {
	return r.render(w, res, 0)
}

func (r *Renderer) render(w io.Writer, res schema.Result, depth int) error {
	keys := make([]string, 0, len(res))
	for k := range res {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	indent := strings.Repeat("  ", depth)
	for _, key := range keys {
		field := res[key]
		if field.Fields != nil {
			if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key); err != nil {
				return err
			}
			if err := r.render(w, field.Fields, depth+1); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, r.mark(field.Valid), key); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) mark(valid bool) string {
	if valid {
		return termenv.String("✔").Foreground(r.profile.Color("#22c55e")).String()
	}
	return termenv.String("✘").Foreground(r.profile.Color("#ef4444")).String()
}
