package board

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Command is a discrete request from a front-end. Commands are applied
// between ticks, never during one.
type Command int

const (
	CmdStart Command = iota
	CmdReset
	CmdRowsUp
	CmdRowsDown
	CmdBallsUp
	CmdBallsDown
)

var commandNames = map[Command]string{
	CmdStart:     "start",
	CmdReset:     "reset",
	CmdRowsUp:    "rows+",
	CmdRowsDown:  "rows-",
	CmdBallsUp:   "balls+",
	CmdBallsDown: "balls-",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand maps a command name such as "start" or "rows+" to a Command.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// Apply runs a single command against the board.
func (e *Engine) Apply(cmd Command) {
	switch cmd {
	case CmdStart:
		e.Start()
	case CmdReset:
		e.Reset()
	case CmdRowsUp:
		e.SetRows(1)
	case CmdRowsDown:
		e.SetRows(-1)
	case CmdBallsUp:
		e.SetBallCount(BallStep)
	case CmdBallsDown:
		e.SetBallCount(-BallStep)
	default:
		e.logger.WithField("command", cmd.String()).Warn("ignoring unknown command")
	}
}

// Start resets the board and lets the spawner release balls.
func (e *Engine) Start() {
	e.Reset()
	e.dropping = true
}

// Reset discards every in-flight ball, zeroes the bins and run counters and
// regenerates the lattice from the current row count.
func (e *Engine) Reset() {
	e.reset()
	e.logger.WithFields(log.Fields{
		"rows":  e.rows,
		"balls": e.ballCount,
	}).Debug("board reset")
}

// SetRows shifts the row count by delta, clamped to [MinRows, MaxRows], and
// resets the board even when the clamp leaves the count unchanged.
func (e *Engine) SetRows(delta int) {
	rows := clamp(e.rows+delta, MinRows, MaxRows)
	if rows != e.rows {
		e.logger.WithFields(log.Fields{"from": e.rows, "to": rows}).Debug("rows changed")
		e.rows = rows
	}
	e.Reset()
}

// SetBallCount shifts the ball count by delta, clamped to [MinBalls, MaxBalls],
// and resets the board.
func (e *Engine) SetBallCount(delta int) {
	n := clamp(e.ballCount+delta, MinBalls, MaxBalls)
	if n != e.ballCount {
		e.logger.WithFields(log.Fields{"from": e.ballCount, "to": n}).Debug("ball count changed")
		e.ballCount = n
	}
	e.Reset()
}
