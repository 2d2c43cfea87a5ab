package replay

import (
	"github.com/younwookim/tilerun/internal/application/session"
	"github.com/younwookim/tilerun/internal/application/state"
)

// Result summarizes a headless playback
type Result struct {
	Frames   int
	State    state.GameState
	Level    int
	Enemies  int
	Counters session.Counters
}

// Run starts the session and feeds it every recorded frame.
// Commands are applied before the frame's tick, as the playing scene does.
func Run(sess *session.Session, r *Replayer) Result {
	sess.Start()
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		Apply(sess, in.Command)
		sess.Tick(in.InputState)
	}
	return Result{
		Frames:   r.CurrentFrame(),
		State:    sess.State(),
		Level:    sess.Level(),
		Enemies:  sess.World().ActiveEnemies(),
		Counters: sess.Counters(),
	}
}

// Apply issues a recorded command to the session
func Apply(sess *session.Session, cmd Command) {
	switch cmd {
	case CmdNext:
		sess.NextLevel()
	case CmdRestart:
		sess.Restart()
	case CmdPause:
		sess.TogglePause()
	case CmdQuit:
		sess.Quit()
	}
}
