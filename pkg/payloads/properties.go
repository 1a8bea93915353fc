package payloads

// DaemonProperties is factomd's properties result.
type DaemonProperties struct {
	FactomdVersion    string `json:"factomdversion"`
	FactomdAPIVersion string `json:"factomdapiversion"`
}

// WalletProperties is factom-walletd's properties result.
type WalletProperties struct {
	WalletVersion    string `json:"walletversion"`
	WalletAPIVersion string `json:"walletapiversion"`
}
