package payloads

/*
The compose calls are walletd's hand-off to factomd: walletd signs and
marshals locally, then returns ready-to-send JSON-RPC envelopes that the
caller forwards to the node API. ComposedCall is one such envelope; the
ids walletd stamps on them belong to walletd's own counter, not ours.
*/
type ComposedCall struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      uint64            `json:"id"`
	Method  string            `json:"method"`
	Params  map[string]string `json:"params"`
}

// ComposedCommitReveal is the result of compose-chain and compose-entry:
// the commit to pay for the data and the reveal that publishes it, to be
// submitted in that order.
type ComposedCommitReveal struct {
	Commit ComposedCall `json:"commit"`
	Reveal ComposedCall `json:"reveal"`
}

// ChainRequest is the chain parameter of compose-chain. External ids and
// content are hex encoded.
type ChainRequest struct {
	FirstEntry EntryRequest `json:"firstentry"`
}

// EntryRequest is the entry parameter of compose-entry, and the first
// entry of a composed chain. ChainID stays empty for compose-chain, the
// chain id is derived from the external ids.
type EntryRequest struct {
	ChainID string   `json:"chainid,omitempty"`
	ExtIDs  []string `json:"extids"`
	Content string   `json:"content"`
}
