package payloads

import "encoding/json"

// DirectoryBlock is the result of directory-block: the anchor points of
// every chain that changed during one block window.
type DirectoryBlock struct {
	Header         DirectoryBlockHeader `json:"header"`
	EntryBlockList []EntryBlockRef      `json:"entryblocklist"`
}

type DirectoryBlockHeader struct {
	PrevBlockKeyMR string `json:"prevblockkeymr"`
	SequenceNumber int64  `json:"sequencenumber"`
	Timestamp      int64  `json:"timestamp"`
}

type EntryBlockRef struct {
	ChainID string `json:"chainid"`
	KeyMR   string `json:"keymr"`
}

type DirectoryBlockHead struct {
	KeyMR string `json:"keymr"`
}

// DBlockByHeight is the result of dblock-by-height. RawData is the hex
// encoded marshalled block.
type DBlockByHeight struct {
	DBlock  DBlock `json:"dblock"`
	RawData string `json:"rawdata"`
}

type DBlock struct {
	Header    DBlockHeader    `json:"header"`
	DBEntries []EntryBlockRef `json:"dbentries"`
	DBHash    string          `json:"dbhash"`
	KeyMR     string          `json:"keymr"`
}

type DBlockHeader struct {
	Version      int    `json:"version"`
	NetworkID    int64  `json:"networkid"`
	BodyMR       string `json:"bodymr"`
	PrevKeyMR    string `json:"prevkeymr"`
	PrevFullHash string `json:"prevfullhash"`
	Timestamp    int64  `json:"timestamp"`
	DBHeight     int64  `json:"dbheight"`
	BlockCount   int    `json:"blockcount"`
	ChainID      string `json:"chainid"`
}

// AdminBlock is shared by admin-block and ablock-by-height. The entry
// list mixes a dozen record types (server additions, key rotations,
// coinbase descriptors), so entries stay raw for the caller to switch on
// their adminidtype.
type AdminBlock struct {
	ABlock  ABlock `json:"ablock"`
	RawData string `json:"rawdata"`
}

type ABlock struct {
	Header            ABlockHeader      `json:"header"`
	ABEntries         []json.RawMessage `json:"abentries"`
	BackReferenceHash string            `json:"backreferencehash"`
	LookupHash        string            `json:"lookuphash"`
}

type ABlockHeader struct {
	PrevBackRefHash     string `json:"prevbackrefhash"`
	DBHeight            int64  `json:"dbheight"`
	HeaderExpansionSize int64  `json:"headerexpansionsize"`
	HeaderExpansionArea string `json:"headerexpansionarea,omitempty"`
	MessageCount        int    `json:"messagecount"`
	BodySize            int64  `json:"bodysize"`
	AdminChainID        string `json:"adminchainid"`
	ChainID             string `json:"chainid"`
}

// EntryCreditBlock is shared by entry-credit-block and ecblock-by-height.
// Body entries mix commits, minute markers and server index numbers, so
// they stay raw.
type EntryCreditBlock struct {
	ECBlock ECBlock `json:"ecblock"`
	RawData string  `json:"rawdata"`
}

type ECBlock struct {
	Header     ECBlockHeader `json:"header"`
	Body       ECBlockBody   `json:"body"`
	FullHash   string        `json:"fullhash,omitempty"`
	HeaderHash string        `json:"headerhash,omitempty"`
}

type ECBlockBody struct {
	Entries []json.RawMessage `json:"entries"`
}

type ECBlockHeader struct {
	BodyHash            string `json:"bodyhash"`
	PrevHeaderHash      string `json:"prevheaderhash"`
	PrevFullHash        string `json:"prevfullhash"`
	DBHeight            int64  `json:"dbheight"`
	HeaderExpansionArea string `json:"headerexpansionarea,omitempty"`
	ObjectCount         int64  `json:"objectcount"`
	BodySize            int64  `json:"bodysize"`
	ChainID             string `json:"chainid"`
	ECChainID           string `json:"ecchainid"`
}

// FactoidBlock is shared by factoid-block and fblock-by-height.
type FactoidBlock struct {
	FBlock  FBlock `json:"fblock"`
	RawData string `json:"rawdata"`
}

type FBlock struct {
	BodyMR          string               `json:"bodymr"`
	PrevKeyMR       string               `json:"prevkeymr"`
	PrevLedgerKeyMR string               `json:"prevledgerkeymr"`
	ExchRate        uint64               `json:"exchrate"`
	DBHeight        int64                `json:"dbheight"`
	Transactions    []FactoidTransaction `json:"transactions"`
	ChainID         string               `json:"chainid"`
	KeyMR           string               `json:"keymr"`
	LedgerKeyMR     string               `json:"ledgerkeymr"`
}
