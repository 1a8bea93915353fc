package payloads

// Address is one wallet key pair. Public is the human readable FA or EC
// address, Secret the matching Fs or Es key. Secret is empty in results
// that deliberately withhold it.
type Address struct {
	Public string `json:"public"`
	Secret string `json:"secret,omitempty"`
}

type AddressList struct {
	Addresses []Address `json:"addresses"`
}

// Success is the bare acknowledgement walletd returns for operations
// with nothing else to report, like remove-address.
type Success struct {
	Success bool `json:"success"`
}

// UnlockWallet reports until when an encrypted wallet stays unlocked,
// as unix seconds.
type UnlockWallet struct {
	Success       bool  `json:"success"`
	UnlockedUntil int64 `json:"unlockeduntil"`
}
