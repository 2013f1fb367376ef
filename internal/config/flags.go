package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses client command-line flags from args (without the program
// name). Unknown flags produce an error.
//
// Flags:
//
//	-api            REST API base URL
//	-timeout        request timeout (e.g. "15s")
//	-db             session database DSN
//	-session-key    key sealing the persisted token
//	-metrics        metrics endpoint host:port
//	-log            log file path
//	-session-check  session expiry check interval (e.g. "1m")
//	-c / -config    JSON config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("pronet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		apiURL         string
		requestTimeout time.Duration
		dsn            string
		sessionKey     string
		metricsAddress string
		logFile        string
		sessionCheck   time.Duration
		jsonConfigPath string
	)

	fs.StringVar(&apiURL, "api", "", "REST API base URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g. 15s)")
	fs.StringVar(&dsn, "db", "", "Session database DSN")
	fs.StringVar(&sessionKey, "session-key", "", "Key sealing the persisted token")
	fs.StringVar(&metricsAddress, "metrics", "", "Metrics endpoint host:port")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.DurationVar(&sessionCheck, "session-check", 0, "Session expiry check interval (e.g. 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		API: API{
			URL:            apiURL,
			RequestTimeout: requestTimeout,
		},
		App:          App{SessionKey: sessionKey},
		Storage:      Storage{DB: DB{DSN: dsn}},
		Metrics:      Metrics{Address: metricsAddress},
		Log:          Log{File: logFile},
		Workers:      Workers{SessionCheckInterval: sessionCheck},
		JSONFilePath: jsonConfigPath,
	}, nil
}
