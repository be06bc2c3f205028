// Package main is the entry point for the eva binary: a CLI front end
// over the core dispatcher for running one-off requests, batch files,
// capability and health probes.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/phantompay1/EVA/core"
)

const (
	defaultLogLevel = "info"
	defaultConfig   = ""
)

// Config is the YAML configuration of the binary. Zero values mean
// "use the engine defaults".
type Config struct {
	LogLevel string `yaml:"log_level"`
	Pretty   bool   `yaml:"pretty"`
	Workers  int    `yaml:"workers"`
	Seed     int64  `yaml:"seed"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for eva.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eva",
		Short: "Numerical computing engine",
		Long: `A dispatcher over dense linear algebra, signal processing, image
processing and iterative optimization engines.

Requests are JSON objects {"method", "data", "options", "request_id"};
responses carry the result, success flag and timing metadata.

Example:
  eva dispatch --method matrix_multiply \
    --data '{"a": [[1,2],[3,4]], "b": [[1,0],[0,1]]}'`,
	}

	rootCmd.PersistentFlags().StringP("config", "c", defaultConfig, "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newDispatchCmd(), newCapabilitiesCmd(), newHealthCmd())

	return rootCmd
}

// newDispatchCmd creates the dispatch subcommand.
func newDispatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Process one request, or a file of requests",
		RunE:  runDispatch,
	}

	cmd.Flags().StringP("method", "m", "", "Method name (e.g. matrix_multiply)")
	cmd.Flags().StringP("data", "d", "", "Request payload (JSON)")
	cmd.Flags().StringToString("option", nil, "Named option as key=value (repeatable)")
	cmd.Flags().String("request-id", "", "Correlation id (generated when blank)")
	cmd.Flags().StringP("file", "f", "", "Process newline-delimited JSON requests from a file")
	cmd.Flags().Bool("show-metrics", false, "Print the metrics snapshot after processing")

	return cmd
}

func runDispatch(cmd *cobra.Command, _ []string) error {
	dispatcher, err := buildDispatcher(cmd)
	if err != nil {
		return err
	}

	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}

	if file != "" {
		if err := runBatch(cmd, dispatcher, file); err != nil {
			return err
		}
	} else {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}
		if err := printJSON(cmd, dispatcher.ProcessRequest(req)); err != nil {
			return err
		}
	}

	show, err := cmd.Flags().GetBool("show-metrics")
	if err != nil {
		return fmt.Errorf("failed to get show-metrics flag: %w", err)
	}
	if show {
		return printJSON(cmd, dispatcher.Metrics().Snapshot())
	}

	return nil
}

// runBatch processes newline-delimited JSON requests from path, writing
// one response line per request.
func runBatch(cmd *cobra.Command, dispatcher *core.Dispatcher, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open request file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<24)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req core.ProcessingRequest
		if err := json.Unmarshal(line, &req); err != nil {
			return fmt.Errorf("malformed request line: %w", err)
		}
		if err := printJSON(cmd, dispatcher.ProcessRequest(req)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// requestFromFlags builds a single request from dispatch flags.
func requestFromFlags(cmd *cobra.Command) (core.ProcessingRequest, error) {
	method, err := cmd.Flags().GetString("method")
	if err != nil {
		return core.ProcessingRequest{}, fmt.Errorf("failed to get method flag: %w", err)
	}
	if method == "" {
		return core.ProcessingRequest{}, fmt.Errorf("--method is required (or use --file)")
	}

	data, err := cmd.Flags().GetString("data")
	if err != nil {
		return core.ProcessingRequest{}, fmt.Errorf("failed to get data flag: %w", err)
	}

	options, err := cmd.Flags().GetStringToString("option")
	if err != nil {
		return core.ProcessingRequest{}, fmt.Errorf("failed to get option flag: %w", err)
	}

	requestID, err := cmd.Flags().GetString("request-id")
	if err != nil {
		return core.ProcessingRequest{}, fmt.Errorf("failed to get request-id flag: %w", err)
	}

	return core.ProcessingRequest{
		Method:    method,
		Data:      data,
		Options:   options,
		RequestID: requestID,
	}, nil
}

// newCapabilitiesCmd creates the capabilities subcommand.
func newCapabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "List every routable operation class",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dispatcher, err := buildDispatcher(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, dispatcher.Capabilities())
		},
	}
}

// newHealthCmd creates the health subcommand.
func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Report engine health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dispatcher, err := buildDispatcher(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, dispatcher.HealthCheck())
		},
	}
}

// buildDispatcher assembles a dispatcher from the config file and
// persistent flags. Flags override file values.
func buildDispatcher(cmd *cobra.Command) (*core.Dispatcher, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	opts := []core.Option{core.WithLogger(logger)}
	if cfg.Workers > 0 {
		opts = append(opts, core.WithWorkers(cfg.Workers))
	}
	if cfg.Seed != 0 {
		opts = append(opts, core.WithSeed(cfg.Seed))
	}

	return core.New(opts...), nil
}

// loadConfig reads the YAML config file when one is given, then applies
// flag overrides.
func loadConfig(cmd *cobra.Command) (Config, error) {
	cfg := Config{LogLevel: defaultLogLevel}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return cfg, fmt.Errorf("failed to get log-level flag: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// newLogger builds the zap logger described by cfg.
func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Pretty {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level

	return zcfg.Build()
}

// printJSON writes v to the command's stdout as one compact JSON line.
func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	cmd.Println(string(raw))

	return nil
}
