package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/log"
	"github.com/felixgeelhaar/jeff/internal/version"
)

// setupLogging installs the process-wide logger. Flags win over the
// environment; logs always go to the command's stderr. Every entry of one
// invocation carries the same run_id.
func setupLogging(cmd *cobra.Command) {
	info := version.GetInfo()

	logger := log.New(log.Config{
		Level:          log.ParseLevel(getLogLevel()),
		Format:         log.ParseFormat(getLogFormat()),
		Output:         log.NewOutput(cmd.ErrOrStderr()),
		AddSource:      false,
		ServiceName:    log.ServiceName,
		ServiceVersion: info.Version,
	})

	log.SetDefaultLogger(logger.With("run_id", uuid.NewString()))
}

func getLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	if env := os.Getenv("JEFF_LOG_LEVEL"); env != "" {
		return env
	}
	return "warn"
}

func getLogFormat() string {
	if logFormat != "" {
		return logFormat
	}
	if env := os.Getenv("JEFF_LOG_FORMAT"); env != "" {
		return env
	}
	return "text"
}
