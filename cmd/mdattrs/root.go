package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manuelmeister/goldmark-attributes/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:               "mdattrs",
	Short:             "Markdown renderer with attribute annotations",
	Long:              "mdattrs renders Markdown to HTML, applying {#id .class key=value} annotations to the elements they follow.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

// logger is configured from --log-level and --log-format before any command runs.
var logger = logging.Discard()

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool("escaped", false, `Recognize escaped \{...\} annotations instead of {...}`)
	rootCmd.PersistentFlags().Bool("gfm", false, "Enable GitHub Flavored Markdown (tables, strikethrough, task lists)")
	rootCmd.PersistentFlags().Bool("unsafe", false, "Pass raw HTML through to the output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("escaped", rootCmd.PersistentFlags().Lookup("escaped"))
	_ = viper.BindPFlag("gfm", rootCmd.PersistentFlags().Lookup("gfm"))
	_ = viper.BindPFlag("unsafe", rootCmd.PersistentFlags().Lookup("unsafe"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	viper.SetEnvPrefix("MDATTRS")
	viper.AutomaticEnv()

	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func setupLogger(cmd *cobra.Command, args []string) error {
	l, err := newLogger(viper.GetString("log_level"), viper.GetString("log_format"))
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func newLogger(level, format string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := logging.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return logging.New(os.Stderr, lvl, f), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
