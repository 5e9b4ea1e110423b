package cmd

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnolang/formal/check"
	"github.com/gnolang/formal/internal/engine"
)

var (
	activeStyle   = color.New(color.FgGreen, color.Bold)
	disabledStyle = color.New(color.FgHiBlack)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := check.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		e := newEngine(config)
		active := e.Names()

		out := cmd.OutOrStdout()
		for _, name := range e.Registered() {
			state := activeStyle.Sprint("on ")
			if !slices.Contains(active, name) {
				state = disabledStyle.Sprint("off")
			}
			r, _ := e.Rule(name)
			fmt.Fprintf(out, "%s %-18s %s\n", state, name, engine.Describe(r))
		}
		return nil
	},
}
