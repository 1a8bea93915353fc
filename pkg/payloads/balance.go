package payloads

// Balance is the result of factoid-balance and entry-credit-balance.
// Factoid balances are factoshis (10^-8 FCT), entry credit balances are
// whole entry credits.
type Balance struct {
	Balance int64 `json:"balance"`
}

// BalanceStatus is one address in a multiple-balances result. Ack is the
// balance after applying the in-flight transactions known to the node,
// Saved is the last balance written to the database. Err is empty unless
// the daemon could not resolve that particular address.
type BalanceStatus struct {
	Ack   int64  `json:"ack"`
	Saved int64  `json:"saved"`
	Err   string `json:"err"`
}

// MultipleBalances is the result of multiple-fct-balances and
// multiple-ec-balances. Balances come back in the order the addresses
// were asked for.
type MultipleBalances struct {
	CurrentHeight   int64           `json:"currentheight"`
	LastSavedHeight int64           `json:"lastsavedheight"`
	Balances        []BalanceStatus `json:"balances"`
}

// EntryCreditRate is the number of factoshis one entry credit costs.
type EntryCreditRate struct {
	Rate int64 `json:"rate"`
}
