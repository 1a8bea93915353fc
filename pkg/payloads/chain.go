package payloads

// ChainHead is the key merkle root of the newest entry block of a chain.
// ChainInProcessList flags a chain that was committed during the current
// block and has no entry block yet.
type ChainHead struct {
	ChainHead          string `json:"chainhead"`
	ChainInProcessList bool   `json:"chaininprocesslist"`
}

// CommitChain is the result of commit-chain.
type CommitChain struct {
	Message     string `json:"message"`
	TxID        string `json:"txid"`
	EntryHash   string `json:"entryhash"`
	ChainIDHash string `json:"chainidhash,omitempty"`
}

// CommitEntry is the result of commit-entry.
type CommitEntry struct {
	Message   string `json:"message"`
	TxID      string `json:"txid"`
	EntryHash string `json:"entryhash"`
}

// Reveal is the result of reveal-chain and reveal-entry, which share a
// response shape.
type Reveal struct {
	Message   string `json:"message"`
	EntryHash string `json:"entryhash"`
	ChainID   string `json:"chainid"`
}
