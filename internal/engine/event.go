package engine

// Stage marks where a file is in its run.
type Stage uint8

const (
	// StageStarted fires when a worker picks the file up.
	StageStarted Stage = iota
	// StageFinished fires when the file's result is final.
	StageFinished
)

// Event is one progress notification. The UI consumes these to drive the
// live file list; consumers must drain the channel or the workers block.
type Event struct {
	Path    string
	Stage   Stage
	Changed bool
	Cached  bool
	Failed  bool
}
