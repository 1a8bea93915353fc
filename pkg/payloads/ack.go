package payloads

// AckStatus is the confirmation state the ack call reports for an entry
// or transaction.
type AckStatus string

const (
	// AckStatusUnknown means the hash is not known to the node at all.
	AckStatusUnknown AckStatus = "Unknown"
	// AckStatusNotConfirmed means the transaction exists but is not yet
	// acknowledged by the network.
	AckStatusNotConfirmed AckStatus = "NotConfirmed"
	// AckStatusACK means the network acknowledged the transaction but it
	// is not in a block yet.
	AckStatusACK AckStatus = "TransactionACK"
	// AckStatusDBlockConfirmed means the transaction made it into a
	// directory block.
	AckStatusDBlockConfirmed AckStatus = "DBlockConfirmed"
)

// Confirmed reports whether the network has accepted the transaction:
// acknowledged by the federated servers or already in a directory block.
func (s AckStatus) Confirmed() bool {
	return s == AckStatusACK || s == AckStatusDBlockConfirmed
}

// AckStage is the confirmation detail for one stage of an entry's
// lifecycle. Dates are unix milliseconds with a display twin.
type AckStage struct {
	Status                AckStatus `json:"status"`
	TransactionDate       int64     `json:"transactiondate,omitempty"`
	TransactionDateString string    `json:"transactiondatestring,omitempty"`
	BlockDate             int64     `json:"blockdate,omitempty"`
	BlockDateString       string    `json:"blockdatestring,omitempty"`
}

// EntryAck is the ack result for an entry hash: the commit and the
// reveal are acknowledged separately.
type EntryAck struct {
	CommitTxID string   `json:"committxid,omitempty"`
	EntryHash  string   `json:"entryhash,omitempty"`
	CommitData AckStage `json:"commitdata"`
	EntryData  AckStage `json:"entrydata"`
}

// FactoidAck is the ack result for a factoid transaction id.
type FactoidAck struct {
	TxID                  string    `json:"txid"`
	TransactionDate       int64     `json:"transactiondate,omitempty"`
	TransactionDateString string    `json:"transactiondatestring,omitempty"`
	BlockDate             int64     `json:"blockdate,omitempty"`
	BlockDateString       string    `json:"blockdatestring,omitempty"`
	Status                AckStatus `json:"status"`
}
