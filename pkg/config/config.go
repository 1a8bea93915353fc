package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/maxbull/factom-go-sdk/internal/common/core"
)

type Config struct {
	FactomdURL string
	WalletdURL string
	// DebugURL overrides the debug endpoint. When empty, the debug
	// endpoint is derived from the factomd host.
	DebugURL string

	Timeout            time.Duration
	InsecureSkipVerify bool
	// Mostly used for log level.
	Development  bool
	RetryMode    core.RetryMode
	RetryMaxTime time.Duration
}

var (
	retryModeMap = map[string]core.RetryMode{
		"none":    core.None,
		"backoff": core.Backoff,
	}
)

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - FACTOMD_URL: the factomd API host. Defaults to http://localhost:8088.
// - WALLETD_URL: the factom-walletd host. Defaults to http://localhost:8089.
// - FACTOM_DEBUG_URL: the debug API host. Defaults to the factomd host.
// - FACTOM_TIMEOUT: the HTTP round-trip timeout. Defaults to 30 seconds.
// - FACTOM_INSECURE: whether to skip verifying the server's TLS certificate.
// - FACTOM_DEVELOPMENT: whether to enable development mode.
// - FACTOM_RETRY_MODE: the retry mode to use. Defaults to "none". Valid values are "none", "backoff".
// - FACTOM_RETRY_MAX_TIME: the maximum total time spent retrying. Defaults to 5 minutes.
//
// Unset endpoint variables fall back to the local daemon ports instead of
// failing: a stock development box runs both daemons on loopback, and the
// remote presets are constructor arguments rather than environment state.
func New() (*Config, error) {
	factomdURL := os.Getenv("FACTOMD_URL")
	if factomdURL == "" {
		factomdURL = core.LocalFactomdHost
	}

	walletdURL := os.Getenv("WALLETD_URL")
	if walletdURL == "" {
		walletdURL = core.LocalWalletdHost
	}

	timeout := core.DefaultTimeout
	if v := os.Getenv("FACTOM_TIMEOUT"); v != "" {
		duration, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse FACTOM_TIMEOUT: %w", err)
		}
		timeout = duration
	}

	retryMode := core.None
	retryMaxTime := 5 * time.Minute

	if v := os.Getenv("FACTOM_RETRY_MODE"); v != "" {
		retry, ok := retryModeMap[v]
		if !ok {
			fmt.Println("[ERROR] failed to set retry mode, disabling retries")
		} else {
			retryMode = retry
		}
	}

	if v := os.Getenv("FACTOM_RETRY_MAX_TIME"); v != "" {
		duration, err := time.ParseDuration(v)
		if err == nil {
			retryMaxTime = duration
		} else {
			fmt.Println("[ERROR] failed to parse retry max time, keeping the default")
		}
	}

	insecureStr := os.Getenv("FACTOM_INSECURE")
	insecure := false
	if insecureStr != "" {
		insecure, _ = strconv.ParseBool(insecureStr)
	}

	development := false
	if v := os.Getenv("FACTOM_DEVELOPMENT"); v != "" {
		development, _ = strconv.ParseBool(v)
	}

	return &Config{
		FactomdURL:         factomdURL,
		WalletdURL:         walletdURL,
		DebugURL:           os.Getenv("FACTOM_DEBUG_URL"),
		Timeout:            timeout,
		InsecureSkipVerify: insecure,
		Development:        development,
		RetryMode:          retryMode,
		RetryMaxTime:       retryMaxTime,
	}, nil
}
