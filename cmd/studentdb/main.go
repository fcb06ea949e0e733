package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/studentdb/internal/config"
	"github.com/jeanpaul/studentdb/internal/logging"
	"github.com/jeanpaul/studentdb/internal/store"
)

var version = "dev"

var (
	cfgFile  string
	dataFile string
	uiMode   string
	verbose  bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "studentdb",
	Short: "Keep a list of student records in a JSON file",
	Long: `studentdb maintains student records (id, name, grade) in a JSON file.

Run without arguments to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if dataFile != "" {
			cfg.DataFile = dataFile
		}
		if uiMode != "" {
			cfg.UI = uiMode
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		logger, err = logging.New(cfg.LogFile, cfg.LogLevel, verbose)
		if err != nil {
			return err
		}
		logger.Debug("Starting", zap.String("command", cmd.Name()), zap.String("data_file", cfg.DataFile))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "studentdb %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: studentdb.yaml in ., $XDG_CONFIG_HOME/studentdb, ~/.config/studentdb)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Student records file (default: students.json)")
	rootCmd.PersistentFlags().StringVar(&uiMode, "ui", "", "Interface: auto, tui, or plain")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (needs log_file)")

	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: json, yaml, xlsx, or md (default: from --output extension, else json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

func openStore() *store.Store {
	return store.New(cfg.DataFile, store.WithLogger(logger))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
