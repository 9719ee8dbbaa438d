package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printReport writes a markdown report, rendered for the terminal unless --raw is set.
func (a *app) printReport(markdown string) error {
	if a.v.GetBool(keyRaw) {
		a.printRaw(markdown)
		return nil
	}
	out, err := renderMarkdown(markdown, a.v.GetInt(keyWidth))
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, out)
	return nil
}

// renderMarkdown renders markdown content using glamour.
func renderMarkdown(markdown string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
