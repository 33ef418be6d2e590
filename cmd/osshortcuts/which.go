package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tischda/osshortcuts/keycode"
	"github.com/tischda/osshortcuts/shortcut"
)

func newWhichCmd(a *app) *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "which COMBO",
		Short: "Show which shortcuts send a key combination, e.g. 'cmd+shift+g'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := keycode.Parse(args[0])
			if err != nil {
				return err
			}
			platforms, err := parsePlatforms(platform)
			if err != nil {
				return err
			}
			lines := whichLines(c, platforms)
			if len(lines) == 0 {
				return fmt.Errorf("no shortcut sends %s", c)
			}
			fmt.Fprintln(a.stdout, strings.Join(lines, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "both", "platform to search (macos, windows, both)")
	return cmd
}

func whichLines(c keycode.Combo, platforms []shortcut.Platform) []string {
	var lines []string
	for _, p := range platforms {
		for _, id := range shortcut.Find(c, p) {
			lines = append(lines, fmt.Sprintf("%-8s %s (%s)", p, id, id.Keycode()))
		}
	}
	return lines
}
