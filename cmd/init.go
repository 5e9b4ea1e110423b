package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/formal/check"
	tt "github.com/gnolang/formal/internal/types"
)

// initCmd: formal init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", cfgFile)
		return nil
	},
}

func initConfigurationFile(configurationPath string) error {
	config := check.DefaultConfig()
	for _, name := range check.RuleNames() {
		config.Rules[name] = tt.ConfigRule{Severity: tt.SeverityError}
	}
	return check.WriteConfig(configurationPath, config)
}
