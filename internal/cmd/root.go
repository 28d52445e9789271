package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	outputFmt string
	verbose   bool
)

// rootCmd is the base command when called without subcommands.
// A bare invocation runs the default analysis over the configured log file.
var rootCmd = &cobra.Command{
	Use:   "firewall-log-analyzer",
	Short: "Firewall log analyzer",
	Long: `firewall-log-analyzer ingests firewall log text, extracts structured
connection-event records via pattern matching, and renders a filterable
tabular view (full traffic plus the blocked subset).`,
	RunE: runAnalyze,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.firewall-log-analyzer.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print matched/skipped line decisions to stderr")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".firewall-log-analyzer")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("log_file", "firewall_logs.txt")
	viper.SetDefault("port", "8080")

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
