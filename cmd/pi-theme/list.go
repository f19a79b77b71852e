// ABOUTME: list subcommand: prints pairs and themes as a markdown table
// ABOUTME: Rendered with glamour when stdout is a terminal; raw markdown otherwise

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
	"github.com/mauromedda/pi-theme-sync/internal/themesync"
)

func newListCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List theme pairs and themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, ok := themesync.NewStore(a.cfg).Load()
			if !ok {
				sel = resolver.Auto(a.cfg.DefaultPair)
			}
			md := catalogMarkdown(sel)

			width, isTTY := stdoutWidth()
			if raw || !isTTY {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			out, err := renderMarkdown(md, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

// catalogMarkdown lists pairs, then dark and light themes. The current
// selection is marked.
func catalogMarkdown(current resolver.Selection) string {
	mark := func(sel resolver.Selection) string {
		if sel.PickerValue() == current.PickerValue() {
			return "●"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString("## Pairs (auto follows system)\n\n")
	b.WriteString("| | Pair | Dark | Light |\n|---|---|---|---|\n")
	for _, p := range catalog.Pairs() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", mark(resolver.Auto(p.Name)), p.Name, p.Dark.Name, p.Light.Name)
	}

	title := cases.Title(language.English)
	for _, v := range []catalog.Variant{catalog.Dark, catalog.Light} {
		fmt.Fprintf(&b, "\n## %s themes\n\n", title.String(string(v)))
		b.WriteString("| | Theme | Ghostty name |\n|---|---|---|\n")
		names := catalog.DarkThemes()
		if v == catalog.Light {
			names = catalog.LightThemes()
		}
		for _, name := range names {
			ext, _ := catalog.ExternalNameOf(name)
			fmt.Fprintf(&b, "| %s | %s | %s |\n", mark(resolver.Pinned(name)), name, ext)
		}
	}
	return b.String()
}

func stdoutWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		w = 80
	}
	return w, true
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering list: %w", err)
	}
	return out, nil
}
