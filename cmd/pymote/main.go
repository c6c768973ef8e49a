// Command pymote is a remote console client for OpenSimulator. It
// connects to the simulator's command bridge over TCP and exposes the
// console command catalog as subcommands, plus an interactive shell.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	pymote "github.com/ManfredAabye/OpenSim-Pymote"
	"github.com/ManfredAabye/OpenSim-Pymote/internal/config"
)

var (
	cfg *config.Config

	flagConfig  string
	flagHost    string
	flagPort    int
	flagTimeout string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pymote",
	Short: "Remote console client for OpenSimulator",
	Long: `pymote talks to an OpenSimulator instance through its command bridge,
a TCP endpoint that accepts console commands as line-delimited JSON.

Connection settings come from ~/.pymote.yaml and can be overridden per
invocation with --host, --port and --timeout.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfiguration,
}

func loadConfiguration(cmd *cobra.Command, args []string) error {
	var err error
	switch {
	case flagConfig != "":
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
	default:
		path := config.DefaultPath()
		if _, statErr := os.Stat(path); statErr == nil {
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
	}

	levelName := cfg.LogLevel
	if flagVerbose {
		levelName = "debug"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	return nil
}

// connectionSettings merges the command-line flags over the loaded
// configuration. Flags win only when explicitly set.
func connectionSettings(cmd *cobra.Command) (string, int, time.Duration, error) {
	host := cfg.Host
	port := cfg.Port
	timeout := cfg.CommandTimeout()

	if cmd.Flags().Changed("host") {
		host = flagHost
	}
	if cmd.Flags().Changed("port") {
		port = flagPort
	}
	if cmd.Flags().Changed("timeout") {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return "", 0, 0, fmt.Errorf("invalid timeout %q: %w", flagTimeout, err)
		}
		timeout = d
	}
	return host, port, timeout, nil
}

// withClient connects to the command bridge, runs fn, and disconnects.
func withClient(cmd *cobra.Command, fn func(*pymote.Client) error) error {
	host, port, timeout, err := connectionSettings(cmd)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"host":    host,
		"port":    port,
		"timeout": timeout,
	}).Debug("connecting to command bridge")
	return pymote.Session(host, port, timeout, fn)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to the configuration file (default ~/.pymote.yaml)")
	pf.StringVar(&flagHost, "host", config.DefaultHost, "command bridge host")
	pf.IntVar(&flagPort, "port", config.DefaultPort, "command bridge port")
	pf.StringVar(&flagTimeout, "timeout", config.DefaultTimeout, "per-command timeout")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(alertCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(terrainCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(shellCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
