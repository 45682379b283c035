package main

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/grainbill/brewdex/internal/ui"
	"github.com/spf13/cobra"
)

// Patterns used to colorize Cobra's default help output.
var (
	// Unindented section headers such as "Documents:" or "Flags:".
	reHelpHeader = regexp.MustCompile(`(?m)^([A-Z][^\n]*:)\s*$`)

	// Command names: two-space indent, a word, then the gap before the
	// description.
	reHelpCommand = regexp.MustCompile(`(?m)^(  )(\S+)(  )`)
)

// colorizedHelpFunc returns a Cobra help function that post-processes the
// default help text with ANSI colors when the terminal supports it.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		orig := cmd.OutOrStdout()
		if noColor || !ui.ShouldUseColor() {
			cmd.SetOut(orig)
			_ = cmd.Usage()
			return
		}

		var buf bytes.Buffer
		cmd.SetOut(&buf)
		_ = cmd.Usage()
		cmd.SetOut(orig)

		s := reHelpHeader.ReplaceAllStringFunc(buf.String(), func(match string) string {
			return ui.RenderAccent(strings.TrimSpace(match))
		})
		s = reHelpCommand.ReplaceAllStringFunc(s, func(match string) string {
			parts := reHelpCommand.FindStringSubmatch(match)
			if len(parts) == 4 {
				return parts[1] + ui.RenderCommand(parts[2]) + parts[3]
			}
			return match
		})
		fmt.Fprint(orig, s)
	}
}
