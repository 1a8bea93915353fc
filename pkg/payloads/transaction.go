package payloads

// FactoidTransaction is the ledger form of one factoid transaction as it
// appears inside factoid blocks and the transaction call. Amounts are
// factoshis.
type FactoidTransaction struct {
	TxID           string              `json:"txid,omitempty"`
	BlockHeight    int64               `json:"blockheight,omitempty"`
	MilliTimestamp int64               `json:"millitimestamp"`
	Inputs         []TransactionAmount `json:"inputs"`
	Outputs        []TransactionAmount `json:"outputs"`
	OutECs         []TransactionAmount `json:"outecs"`
	RCDs           []string            `json:"rcds"`
	SigBlocks      []SignatureBlock    `json:"sigblocks"`
}

// TransactionAmount pairs an amount with both the raw RCD hash and, when
// the daemon can reconstruct it, the human readable address.
type TransactionAmount struct {
	Amount      uint64 `json:"amount"`
	Address     string `json:"address"`
	UserAddress string `json:"useraddress,omitempty"`
}

type SignatureBlock struct {
	Signatures []string `json:"signatures"`
}

// Transaction is the result of the transaction call: the ledger entry
// plus where it was included.
type Transaction struct {
	FactoidTransaction             FactoidTransaction `json:"factoidtransaction"`
	IncludedInTransactionBlock     string             `json:"includedintransactionblock"`
	IncludedInDirectoryBlock       string             `json:"includedindirectoryblock"`
	IncludedInDirectoryBlockHeight int64              `json:"includedindirectoryblockheight"`
}

// PendingTransaction is a factoid transaction sitting in the holding
// area, not yet part of a factoid block.
type PendingTransaction struct {
	TransactionID string              `json:"transactionid"`
	Status        AckStatus           `json:"status"`
	Inputs        []TransactionAmount `json:"inputs,omitempty"`
	Outputs       []TransactionAmount `json:"outputs,omitempty"`
	ECOutputs     []TransactionAmount `json:"ecoutputs,omitempty"`
	Fees          uint64              `json:"fees,omitempty"`
}

// FactoidSubmit is the result of factoid-submit.
type FactoidSubmit struct {
	Message string `json:"message"`
	TxID    string `json:"txid"`
}
