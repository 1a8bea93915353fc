package payloads

// WalletHeight is the highest block walletd has cached transactions for.
type WalletHeight struct {
	Height int64 `json:"height"`
}

// WalletBackup carries everything needed to rebuild a wallet: the seed
// mnemonic and every stored key pair. Treat it like the secrets it is.
type WalletBackup struct {
	WalletSeed string    `json:"wallet-seed"`
	Addresses  []Address `json:"addresses"`
}

// WalletBalances sums the balances of every address in the wallet, split
// by address family.
type WalletBalances struct {
	FCTAccountBalances AccountBalances `json:"fctaccountbalances"`
	ECAccountBalances  AccountBalances `json:"ecaccountbalances"`
}

type AccountBalances struct {
	Ack   int64 `json:"ack"`
	Saved int64 `json:"saved"`
}

// SignData is the result of sign-data: an ed25519 signature over
// arbitrary bytes by one of the wallet's keys.
type SignData struct {
	PubKey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

/*
WalletTransaction is walletd's transaction object in both of its lives:
the build object that new-transaction starts and add-input, add-output,
add-ec-output, add-fee, sub-fee and sign-transaction keep reshaping, and
the finished record the transactions call returns. The daemon sends null
for empty input and output lists, which decodes to nil slices here.
*/
type WalletTransaction struct {
	Name           string              `json:"name,omitempty"`
	TxID           string              `json:"txid,omitempty"`
	BlockHeight    int64               `json:"blockheight,omitempty"`
	Signed         bool                `json:"signed"`
	Timestamp      int64               `json:"timestamp"`
	TotalInputs    uint64              `json:"totalinputs"`
	TotalOutputs   uint64              `json:"totaloutputs"`
	TotalECOutputs uint64              `json:"totalecoutputs"`
	FeesPaid       uint64              `json:"feespaid,omitempty"`
	FeesRequired   uint64              `json:"feesrequired,omitempty"`
	Inputs         []TransactionAmount `json:"inputs"`
	Outputs        []TransactionAmount `json:"outputs"`
	ECOutputs      []TransactionAmount `json:"ecoutputs"`
}

// TransactionList is the result of the transactions call.
type TransactionList struct {
	Transactions []WalletTransaction `json:"transactions"`
}

// TransactionsQuery filters the transactions call. The filters are
// mutually exclusive; an empty query asks for the whole history, which
// on a synced wallet can be a very large answer.
type TransactionsQuery struct {
	TxID    string             `json:"txid,omitempty"`
	Address string             `json:"address,omitempty"`
	Range   *TransactionsRange `json:"range,omitempty"`
}

// TransactionsRange bounds a transactions query by block height,
// inclusive on both ends.
type TransactionsRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// TmpTransaction is one in-progress transaction in walletd's temporary
// holding area.
type TmpTransaction struct {
	TxName         string `json:"tx-name"`
	TxID           string `json:"txid"`
	TotalInputs    uint64 `json:"totalinputs"`
	TotalOutputs   uint64 `json:"totaloutputs"`
	TotalECOutputs uint64 `json:"totalecoutputs"`
}

type TmpTransactionList struct {
	Transactions []TmpTransaction `json:"transactions"`
}
