package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tischda/osshortcuts/dispatch"
	"github.com/tischda/osshortcuts/shortcut"
)

// exportDoc is the table as written by gen --format toml|yaml.
type exportDoc struct {
	Layout    exportLayout  `toml:"layout" yaml:"layout"`
	Shortcuts []exportEntry `toml:"shortcuts" yaml:"shortcuts"`
}

type exportLayout struct {
	SelectMacOS   uint16 `toml:"select_macos" yaml:"select_macos"`
	SelectWindows uint16 `toml:"select_windows" yaml:"select_windows"`
	Base          uint16 `toml:"base" yaml:"base"`
	Count         int    `toml:"count" yaml:"count"`
}

type exportEntry struct {
	ID          int    `toml:"id" yaml:"id"`
	Name        string `toml:"name" yaml:"name"`
	Keycode     string `toml:"keycode" yaml:"keycode"`
	Code        uint16 `toml:"code" yaml:"code"`
	MacOS       string `toml:"macos" yaml:"macos"`
	MacOSCode   uint16 `toml:"macos_code" yaml:"macos_code"`
	Windows     string `toml:"windows" yaml:"windows"`
	WindowsCode uint16 `toml:"windows_code" yaml:"windows_code"`
}

func newGenCmd(a *app) *cobra.Command {
	var format string
	var start uint16
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the host keycode block and shortcut table",
		Long: `Generates, from the single shortcut table, everything the host firmware needs
to stay in step with it: the shortcut index enum, the custom keycode block in the
same order, and the encoded mac/windows table. Use --format toml or yaml for a
data export instead of C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := dispatch.LayoutAt(dispatch.Keycode(start))
			if err != nil {
				return err
			}
			a.logger.Debug("generating", "format", format, "start", fmt.Sprintf("0x%04X", start))
			switch strings.ToLower(format) {
			case "c", "h":
				return writeC(a.stdout, layout)
			case "toml":
				return toml.NewEncoder(a.stdout).Encode(newExportDoc(layout))
			case "yaml", "yml":
				return writeYAML(a.stdout, newExportDoc(layout))
			}
			return fmt.Errorf("unknown format %q (want c, toml or yaml)", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "c", "output format (c, toml, yaml)")
	cmd.Flags().Uint16Var(&start, "start", uint16(dispatch.UserRange), "first free user keycode")
	return cmd
}

func newExportDoc(l dispatch.Layout) exportDoc {
	doc := exportDoc{
		Layout: exportLayout{
			SelectMacOS:   uint16(l.SelectMacOS),
			SelectWindows: uint16(l.SelectWindows),
			Base:          uint16(l.Base),
			Count:         shortcut.Count,
		},
	}
	for _, e := range shortcut.All() {
		doc.Shortcuts = append(doc.Shortcuts, exportEntry{
			ID:          int(e.ID),
			Name:        e.Name,
			Keycode:     e.ID.Keycode(),
			Code:        uint16(l.Keycode(e.ID)),
			MacOS:       e.Mac.String(),
			MacOSCode:   e.Mac.Encode(),
			Windows:     e.Win.String(),
			WindowsCode: e.Win.Encode(),
		})
	}
	return doc
}

func writeYAML(w io.Writer, doc exportDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// writeC emits a header fragment for the firmware. The custom keycode macros
// are meant to open the keymap's custom_keycodes enum at the layout's start.
func writeC(w io.Writer, l dispatch.Layout) error {
	var b strings.Builder
	entries := shortcut.All()

	fmt.Fprintf(&b, "// Code generated by %s gen. DO NOT EDIT.\n\n#pragma once\n\n", name)
	b.WriteString("enum os_shortcut_platform {\n  platform_macos = 0,\n  platform_windows\n};\n\n")

	b.WriteString("enum shortcut_index {\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  sc_%s = %d,\n", e.Name, int(e.ID))
	}
	b.WriteString("  num_shortcuts\n};\n\n")

	b.WriteString("#define OS_SELECT_KEYCODES \\\n  CU_SELECT_MACOS, \\\n  CU_SELECT_WINDOWS\n\n")

	b.WriteString("#define OS_SHORTCUT_KEYCODES")
	for i, e := range entries {
		sep := ","
		if i == len(entries)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, " \\\n  %s%s", e.ID.Keycode(), sep)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "// With custom_keycodes starting at 0x%04X: CU_SELECT_MACOS = 0x%04X,\n", uint16(l.SelectMacOS), uint16(l.SelectMacOS))
	fmt.Fprintf(&b, "// CU_SELECT_WINDOWS = 0x%04X, CU_WORD_LEFT = 0x%04X.\n\n", uint16(l.SelectWindows), uint16(l.Base))

	b.WriteString("// First column for Mac, second column for Windows. 0x0000 does nothing.\n")
	fmt.Fprintf(&b, "static const uint16_t shortcut_codes[%d][2] = {\n", shortcut.Count)
	for _, e := range entries {
		fmt.Fprintf(&b, "  [sc_%s] = { 0x%04X, 0x%04X }, // %s / %s\n", e.Name, e.Mac.Encode(), e.Win.Encode(), e.Mac, e.Win)
	}
	b.WriteString("};\n")

	_, err := io.WriteString(w, b.String())
	return err
}
