package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncomply/internal/config"
	"github.com/rshade/carboncomply/internal/logging"
)

// Environment overrides for logging, applied between config file and flags.
const (
	envLogLevel  = "CARBONCOMPLY_LOG_LEVEL"
	envLogFormat = "CARBONCOMPLY_LOG_FORMAT"
)

type loggingResult = logging.Result

// setupLogging configures logging based on config file, environment, and CLI
// flags, and attaches the logger plus a trace ID to the command context.
func setupLogging(cmd *cobra.Command) logging.Result {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if envLevel := os.Getenv(envLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}
	if envFormat := os.Getenv(envLogFormat); envFormat != "" {
		loggingCfg.Format = envFormat
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.New(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: could not open log file, logging to stderr: %s\n", result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *loggingResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
