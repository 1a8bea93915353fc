package payloads

// Diagnostics is factomd's own view of its place in the network:
// identity, sync progress, the current authority set and any election
// in progress. Durations are seconds.
type Diagnostics struct {
	Name                   string        `json:"name"`
	ID                     string        `json:"id,omitempty"`
	PublicKey              string        `json:"publickey,omitempty"`
	Role                   string        `json:"role"`
	LeaderHeight           int64         `json:"leaderheight"`
	CurrentMinute          int64         `json:"currentminute"`
	CurrentMinuteDuration  float64       `json:"currentminuteduration"`
	PreviousMinuteDuration float64       `json:"previousminuteduration"`
	BalanceHash            string        `json:"balancehash"`
	TempBalanceHash        string        `json:"tempbalancehash"`
	LastBlockFromDBState   bool          `json:"lastblockfromdbstate"`
	Syncing                SyncingStatus `json:"syncing"`
	AuthSet                AuthSet       `json:"authset"`
	Elections              ElectionInfo  `json:"elections"`
}

type SyncingStatus struct {
	Status   string   `json:"status"`
	Received int64    `json:"received,omitempty"`
	Expected int64    `json:"expected,omitempty"`
	Missing  []string `json:"missing,omitempty"`
}

type AuthSet struct {
	Leaders []LeaderStatus `json:"leaders"`
	Audits  []AuditStatus  `json:"audits"`
}

type LeaderStatus struct {
	ID         string `json:"id"`
	VM         int    `json:"vm"`
	ListHeight int64  `json:"listheight"`
	ListLength int    `json:"listlength"`
	NextNil    int    `json:"nextnil"`
}

type AuditStatus struct {
	ID     string `json:"id"`
	Online bool   `json:"online"`
}

type ElectionInfo struct {
	InProgress bool   `json:"inprogress"`
	VMIndex    int    `json:"vmindex,omitempty"`
	FedIndex   int    `json:"fedindex,omitempty"`
	FedID      string `json:"fedid,omitempty"`
	Round      int    `json:"round,omitempty"`
}
