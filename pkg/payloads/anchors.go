package payloads

import "encoding/json"

// Anchors reports where a directory block has been anchored into
// external chains.
type Anchors struct {
	DirectoryBlockHeight int64          `json:"directoryblockheight"`
	DirectoryBlockKeyMR  string         `json:"directoryblockkeymr"`
	Bitcoin              BitcoinAnchor  `json:"bitcoin"`
	Ethereum             EthereumAnchor `json:"ethereum"`
}

/*
The anchors call reports each external chain as either a record object or
the JSON literal false when the block has not been anchored there yet.
Both shapes land in the same struct, with Recorded telling them apart.
*/
type BitcoinAnchor struct {
	Recorded        bool   `json:"-"`
	TransactionHash string `json:"transactionhash"`
	BlockHash       string `json:"blockhash"`
}

func (a *BitcoinAnchor) UnmarshalJSON(data []byte) error {
	var recorded bool
	if err := json.Unmarshal(data, &recorded); err == nil {
		a.Recorded = recorded
		return nil
	}

	type plain BitcoinAnchor
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*a = BitcoinAnchor(decoded)
	a.Recorded = true
	return nil
}

// EthereumAnchor carries the Ethereum anchor record, or Recorded false
// when the wire value was the literal false. Window anchors cover a
// height range rather than a single block, hence the min and max.
type EthereumAnchor struct {
	Recorded        bool         `json:"-"`
	RecordHeight    int64        `json:"recordheight"`
	DBHeightMax     int64        `json:"dbheightmax"`
	DBHeightMin     int64        `json:"dbheightmin"`
	WindowMR        string       `json:"windowmr"`
	MerkleBranch    []MerkleNode `json:"merklebranch"`
	ContractAddress string       `json:"contractaddress"`
	TxID            string       `json:"txid"`
	BlockHash       string       `json:"blockhash"`
	TxIndex         int64        `json:"txindex"`
}

func (a *EthereumAnchor) UnmarshalJSON(data []byte) error {
	var recorded bool
	if err := json.Unmarshal(data, &recorded); err == nil {
		a.Recorded = recorded
		return nil
	}

	type plain EthereumAnchor
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*a = EthereumAnchor(decoded)
	a.Recorded = true
	return nil
}
