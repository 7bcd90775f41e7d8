package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/kvpage/internal/actions"
	"github.com/HaiFongPan/kvpage/internal/config"
	"github.com/HaiFongPan/kvpage/internal/textfit"
	"github.com/HaiFongPan/kvpage/internal/tui"
	"github.com/HaiFongPan/kvpage/internal/tui/messaging"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	globalConfig *config.Config

	viewTitle  string
	viewWidth  int
	viewHeight int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kvpage [source]",
	Short: "Page through key/value lists in the terminal",
	Long: `kvpage shows a list of key/value rows one page at a time, with a title
bar, a close button and a page counter. Rows can carry actions that run
when they are clicked.

The source is a YAML or JSON document: a local path, - for stdin, or an
r2://bucket/key (s3://bucket/key) object.

Example usage:
  kvpage device.yaml                 # Interactive pager
  kvpage r2://docs/device.yaml       # Fetch from R2
  kvpage render device.yaml --all    # Print every page
  kvpage snapshot device.yaml -o page.png`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", fmt.Sprintf("config file (default is %s)", config.GetDefaultConfigPath()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")

	rootCmd.PersistentFlags().StringVarP(&viewTitle, "title", "t", "", "title (overrides the document title)")
	rootCmd.PersistentFlags().IntVar(&viewWidth, "width", 0, "viewport width (overrides config)")
	rootCmd.PersistentFlags().IntVar(&viewHeight, "height", 0, "viewport height (overrides config)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging()

	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Redirect all logs to file to prevent UI interference
	logFile := globalConfig.Log.File
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		logrus.Warnf("Failed to create log directory for %s: %v", logFile, err)
	} else {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", logFile, err)
		} else {
			logrus.SetOutput(file)
		}
	}

	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// runInteractive runs the pager until it is closed
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	ref, err := sourceRef(args)
	if err != nil {
		return err
	}

	status := messaging.NewStatusManager()
	binder := actions.NewBinder(defaultTimeout(cfg), status)
	doc, err := loadDocument(cmd.Context(), cfg, ref, binder)
	if err != nil {
		return err
	}

	width, height := cfg.Display.Width, cfg.Display.Height
	if cmd.Flags().Changed("width") {
		width = viewWidth
	}
	if cmd.Flags().Changed("height") {
		height = viewHeight
	}
	viewport := tui.ResolveViewport(width, height, tui.TerminalSize)

	model, err := tui.NewPagerModel(doc.Entries, viewport, documentTitle(doc), textfit.NewCellFace(), displayOptions(cfg.Display), status)
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Display.Touch {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if ref == "-" {
		// stdin carried the document, read keys from the terminal
		opts = append(opts, tea.WithInputTTY())
	}

	_, err = tea.NewProgram(model, opts...).Run()
	return err
}
