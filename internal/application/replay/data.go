package replay

// Command is a session command issued on a frame, applied before the tick
type Command string

const (
	CmdNone    Command = ""
	CmdNext    Command = "next"
	CmdRestart Command = "restart"
	CmdPause   Command = "pause"
	CmdQuit    Command = "quit"
)

// FrameInput records input state for a single frame
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	L bool    `json:"l,omitempty"` // Left
	R bool    `json:"r,omitempty"` // Right
	J bool    `json:"j,omitempty"` // Jump
	C Command `json:"c,omitempty"` // Command
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version    string       `json:"version"`
	Difficulty string       `json:"difficulty"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
