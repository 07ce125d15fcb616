package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-i/-instance instance base URL
//	-t/-token access token
//	-streaming-url streaming API base URL
//	-request-timeout request timeout (e.g., "15s")
//	-page-size items per page
//	-lookahead items before the end of a list that trigger the next page
//	-timeline startup timeline: home, local or public
//	-d database DSN
//	-snapshot-interval cache snapshot interval (e.g., "1m")
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("tootline", flag.ContinueOnError)

	var (
		instanceURL      string
		accessToken      string
		streamingURL     string
		requestTimeout   time.Duration
		pageSize         int
		lookahead        int
		defaultTimeline  string
		databaseDSN      string
		snapshotInterval time.Duration
		logFile          string
		jsonConfigPath   string
	)

	fs.StringVar(&instanceURL, "i", "", "Instance base URL")
	fs.StringVar(&instanceURL, "instance", "", "Instance base URL (alias)")
	fs.StringVar(&accessToken, "t", "", "Access token")
	fs.StringVar(&accessToken, "token", "", "Access token (alias)")
	fs.StringVar(&streamingURL, "streaming-url", "", "Streaming API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.IntVar(&pageSize, "page-size", 0, "Items per page")
	fs.IntVar(&lookahead, "lookahead", 0, "Items before the end of a list that trigger the next page")
	fs.StringVar(&defaultTimeline, "timeline", "", "Startup timeline: home, local or public")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&snapshotInterval, "snapshot-interval", 0, "Cache snapshot interval (e.g., 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Instance: Instance{
			URL:            instanceURL,
			AccessToken:    accessToken,
			StreamingURL:   streamingURL,
			RequestTimeout: requestTimeout,
		},
		Timeline: Timeline{
			PageSize:  pageSize,
			Lookahead: lookahead,
			Default:   defaultTimeline,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers:      Workers{SnapshotInterval: snapshotInterval},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
