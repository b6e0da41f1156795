package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/domain"
	"github.com/vipcxj/intervals/internal/interval"
)

const envPrefix = "INTERVALS_"

// options holds the persistent flags shared by every subcommand.
type options struct {
	kind     string
	format   string
	logLevel string
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "Query intervals over numeric domains",
		Long: `intervals builds intervals over byte, short, int, long, float and double
domains, normalizes open bounds to closed ones and classifies the relation
between two intervals with Allen's interval algebra.

An interval argument uses the notation [a,b], (a,b], [a,b), (a,b), (,b], [a,),
N, =N, >N, >=N, <N or <=N, optionally prefixed with a kind, e.g. short:[1,5].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := setupLogging(cmd, opts.logLevel); err != nil {
				return err
			}
			if _, err := kindOf(opts.kind); err != nil {
				return err
			}
			switch opts.format {
			case formatText, formatJSON:
			default:
				return fmt.Errorf("unsupported format %q, expected %s or %s", opts.format, formatText, formatJSON)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.kind, "kind", "k", envDefault("kind", "long"),
		fmt.Sprintf("Default domain kind of interval arguments, one of %v", domain.KindStrings()))
	cmd.PersistentFlags().StringVar(&opts.format, "format", envDefault("format", formatText),
		"Output format: text or json")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envDefault("log-level", "warn"),
		"Log level: panic, fatal, error, warn, info, debug or trace")

	cmd.AddCommand(
		relationCmd(opts),
		compareCmd(opts),
		overlapsCmd(opts),
		containsCmd(opts),
		normalizeCmd(opts),
		sortCmd(opts),
		filterCmd(opts),
		encodeCmd(opts),
		decodeCmd(opts),
		versionCmd(),
	)
	return cmd
}

func setupLogging(cmd *cobra.Command, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger := logrus.StandardLogger()
	logger.SetLevel(lvl)
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	interval.SetLogger(logger)
	return nil
}

// envName maps a flag name to its environment variable, e.g. log-level to
// INTERVALS_LOG_LEVEL.
func envName(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func envDefault(key string, fallback string) string {
	if v, ok := os.LookupEnv(envName(key)); ok && v != "" {
		return v
	}
	return fallback
}

func kindOf(name string) (domain.Kind, error) {
	k, err := domain.KindString(name)
	if err != nil {
		return 0, &domain.OpError{
			Op:    "cmd.kind",
			Kind:  domain.UnsupportedDomain,
			Value: name,
			Err:   fmt.Errorf("expected one of %v", domain.KindStrings()),
		}
	}
	return k, nil
}
