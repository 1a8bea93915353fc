package core

import "time"

// DefaultTimeout bounds a single HTTP round trip when the configuration
// does not set its own.
const DefaultTimeout = 30 * time.Second

type RetryMode int

const (
	None RetryMode = iota // specifies that no retries will be made
	// Backoff retries transport failures with exponential backoff. A factomd
	// that is rebooting or still syncing drops connections for a while, so
	// polling tools usually want this around their own call sites. API
	// rejections are never retried, resending a bad request cannot fix it.
	Backoff
)

const (
	// APIPath is the versioned JSON-RPC path served by both factomd and
	// factom-walletd.
	APIPath = "/v2"
	// DebugPath is the debug API path served by factomd only.
	DebugPath = "/debug"
)

const (
	// LocalFactomdHost and LocalWalletdHost are the well-known ports the
	// daemons bind on a development machine.
	LocalFactomdHost = "http://localhost:8088"
	LocalWalletdHost = "http://localhost:8089"

	// OpenNodeHost is the load-balanced public mainnet factomd run by the
	// Open Node program. There is no public walletd, wallets stay local.
	OpenNodeHost = "https://api.factomd.net"
	// TestnetHost is the community testnet counterpart of the open node.
	TestnetHost = "https://dev.factomd.net"
)
