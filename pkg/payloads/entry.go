package payloads

// Entry is one chain entry. Content and external ids are hex encoded on
// the wire.
type Entry struct {
	ChainID string   `json:"chainid"`
	Content string   `json:"content"`
	ExtIDs  []string `json:"extids"`
}

type EntryBlock struct {
	Header    EntryBlockHeader `json:"header"`
	EntryList []EntryListItem  `json:"entrylist"`
}

type EntryBlockHeader struct {
	BlockSequenceNumber int64  `json:"blocksequencenumber"`
	ChainID             string `json:"chainid"`
	PrevKeyMR           string `json:"prevkeymr"`
	Timestamp           int64  `json:"timestamp"`
	DBHeight            int64  `json:"dbheight"`
}

type EntryListItem struct {
	EntryHash string `json:"entryhash"`
	Timestamp int64  `json:"timestamp"`
}

// PendingEntry is an entry that has been committed or revealed but not
// yet written into an entry block.
type PendingEntry struct {
	EntryHash string    `json:"entryhash"`
	ChainID   string    `json:"chainid"`
	Status    AckStatus `json:"status"`
}

// RawData is the hex encoded binary form of an entry, transaction or
// block returned by raw-data.
type RawData struct {
	Data string `json:"data"`
}
