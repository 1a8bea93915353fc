package library

// Library is the registry of per-endpoint services the top level client
// exposes. Each daemon's call family sits behind its own interface, so
// callers depend only on the slice they use and tests mock the rest away.
type Library interface {
	Daemon() Daemon
	Wallet() Wallet
	Debug() Debug
}
