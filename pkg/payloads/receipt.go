package payloads

// Receipt proves an entry up to a directory block: the merkle branch
// from the entry hash to the directory block key merkle root.
type Receipt struct {
	Receipt ReceiptData `json:"receipt"`
}

type ReceiptData struct {
	Entry                ReceiptEntry `json:"entry"`
	MerkleBranch         []MerkleNode `json:"merklebranch"`
	EntryBlockKeyMR      string       `json:"entryblockkeymr"`
	DirectoryBlockKeyMR  string       `json:"directoryblockkeymr"`
	DirectoryBlockHeight int64        `json:"directoryblockheight"`
}

type ReceiptEntry struct {
	EntryHash string `json:"entryhash"`
	Raw       string `json:"raw,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// MerkleNode is one step of a merkle branch: top is the hash of left
// and right concatenated.
type MerkleNode struct {
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
	Top   string `json:"top,omitempty"`
}
