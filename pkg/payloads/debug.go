package payloads

import "encoding/json"

// HoldingQueue lists the messages waiting in the node's holding area.
// Message shapes differ per message type, so they stay raw.
type HoldingQueue struct {
	Messages []json.RawMessage `json:"messages"`
}

// NetworkInfo identifies which Factom network the node participates in.
// The debug API capitalizes these keys, unlike the rest of the wire.
type NetworkInfo struct {
	NetworkNumber int    `json:"NetworkNumber"`
	NetworkName   string `json:"NetworkName"`
	NetworkID     uint32 `json:"NetworkID"`
}

// AuthorityServer is one server of the authority set as the debug API
// reports it.
type AuthorityServer struct {
	ChainID string `json:"ChainID"`
	Name    string `json:"Name"`
	Online  bool   `json:"Online"`
	Replace string `json:"Replace"`
}

type AuditServers struct {
	AuditServers []AuthorityServer `json:"auditservers"`
}

type FederatedServers struct {
	FederatedServers []AuthorityServer `json:"federatedservers"`
}

// Authority is one identity of the authority set with its signing keys,
// as returned by the authorities call.
type Authority struct {
	AuthorityChainID  string             `json:"chainid"`
	ManagementChainID string             `json:"manageid"`
	MatryoshkaHash    string             `json:"matryoshka"`
	SigningKey        string             `json:"signingkey"`
	Status            int                `json:"status"`
	AnchorKeys        []AnchorSigningKey `json:"anchorkeys"`
}

type AnchorSigningKey struct {
	BlockChain string `json:"blockchain"`
	KeyLevel   byte   `json:"level"`
	KeyType    byte   `json:"keytype"`
	SigningKey string `json:"key"`
}

type Authorities struct {
	Authorities []Authority `json:"authorities"`
}

// DropRate is the artificial packet drop rate, in percent, the node
// applies to simulate bad networks.
type DropRate struct {
	DropRate int64 `json:"droprate"`
}

// Delay is the artificial message delay in milliseconds.
type Delay struct {
	Delay int64 `json:"delay"`
}

// Summary is the node's one-string dump of its process lists.
type Summary struct {
	Summary string `json:"summary"`
}

// MessageLog is the tail of the node's message journal.
type MessageLog struct {
	Messages []string `json:"messages"`
}
