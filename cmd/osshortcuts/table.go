package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/tischda/osshortcuts/keycode"
	"github.com/tischda/osshortcuts/shortcut"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B61FF"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
	noOpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7B61FF"))
)

// column widths: id, name, keycode, one per platform
var tableWidths = []int{4, 17, 21, 20}

func newTableCmd(a *app) *cobra.Command {
	var platform, filter string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the shortcut table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms, err := parsePlatforms(platform)
			if err != nil {
				return err
			}
			entries, err := filterEntries(shortcut.All(), filter)
			if err != nil {
				return err
			}
			a.logger.Debug("rendering table", "rows", len(entries), "filter", filter)
			renderTable(a.stdout, entries, platforms)
			return nil
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "both", "platform column to show (macos, windows, both)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only show shortcuts whose name matches this glob, e.g. 'tab_*'")
	return cmd
}

// parsePlatforms turns a --platform flag into the list of table columns.
func parsePlatforms(s string) ([]shortcut.Platform, error) {
	if s == "" || strings.EqualFold(s, "both") {
		return []shortcut.Platform{shortcut.MacOS, shortcut.Windows}, nil
	}
	p, err := shortcut.ParsePlatform(s)
	if err != nil {
		return nil, err
	}
	return []shortcut.Platform{p}, nil
}

// filterEntries keeps the entries whose name matches the glob pattern. An
// empty pattern keeps everything.
func filterEntries(entries []shortcut.Entry, pattern string) ([]shortcut.Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", pattern, err)
	}
	var out []shortcut.Entry
	for _, e := range entries {
		if g.Match(e.Name) {
			out = append(out, e)
		}
	}
	return out, nil
}

func cell(s string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(s)
}

func renderTable(w io.Writer, entries []shortcut.Entry, platforms []shortcut.Platform) {
	plain := lipgloss.NewStyle()

	header := []string{
		cell("ID", tableWidths[0], headerStyle),
		cell("NAME", tableWidths[1], headerStyle),
		cell("KEYCODE", tableWidths[2], headerStyle),
	}
	for _, p := range platforms {
		header = append(header, cell(strings.ToUpper(p.String()), tableWidths[3], headerStyle))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, e := range entries {
		row := []string{
			cell(fmt.Sprint(int(e.ID)), tableWidths[0], plain),
			cell(e.Name, tableWidths[1], nameStyle),
			cell(e.ID.Keycode(), tableWidths[2], plain),
		}
		for _, p := range platforms {
			row = append(row, comboCell(e.Combo(p)))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
}

func comboCell(c keycode.Combo) string {
	if c.IsNoOp() {
		return cell("-", tableWidths[3], noOpStyle)
	}
	return cell(c.String(), tableWidths[3], lipgloss.NewStyle())
}

// renderStatus boxes a status label the way the firmware shows it on its
// display.
func renderStatus(w io.Writer, status string) {
	fmt.Fprintln(w, statusStyle.Render(status))
}
