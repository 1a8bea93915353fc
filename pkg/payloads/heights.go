package payloads

// Heights reports the four block heights a factomd node tracks. A node
// that is fully synced reports the same value everywhere; a syncing node
// shows entryheight trailing leaderheight.
type Heights struct {
	DirectoryBlockHeight int64 `json:"directoryblockheight"`
	LeaderHeight         int64 `json:"leaderheight"`
	EntryBlockHeight     int64 `json:"entryblockheight"`
	EntryHeight          int64 `json:"entryheight"`
}

// CurrentMinute describes where the network is inside the ten minute
// block window. Times are unix seconds, durations are seconds.
type CurrentMinute struct {
	LeaderHeight            int64 `json:"leaderheight"`
	DirectoryBlockHeight    int64 `json:"directoryblockheight"`
	Minute                  int64 `json:"minute"`
	CurrentBlockStartTime   int64 `json:"currentblockstarttime"`
	CurrentMinuteStartTime  int64 `json:"currentminutestarttime"`
	CurrentTime             int64 `json:"currenttime"`
	DirectoryBlockInSeconds int64 `json:"directoryblockinseconds"`
	StallDetected           bool  `json:"stalldetected"`
	FaultTimeout            int64 `json:"faulttimeout"`
	RoundTimeout            int64 `json:"roundtimeout"`
}
