package session

import (
	"fmt"

	"github.com/plus3/glass/glass"
)

// Action is a player intent queued by the UI.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case Rotate:
		return "Rotate"
	case HardDrop:
		return "HardDrop"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Commands buffers actions between frames. The InputSystem applies them at
// the start of the next tick so input never interleaves with gravity.
type Commands struct {
	actions []Action
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an action.
func (c *Commands) Push(a Action) {
	c.actions = append(c.actions, a)
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// Reset drops every queued action.
func (c *Commands) Reset() {
	c.actions = c.actions[:0]
}

// Flush applies the queued actions to the session in FIFO order, resetting
// the buffer. Rejected moves are dropped silently.
func (c *Commands) Flush(s *Session) {
	g := s.glass
	for _, a := range c.actions {
		switch a {
		case MoveLeft:
			g.Relocate(glass.Left)
		case MoveRight:
			g.Relocate(glass.Right)
		case SoftDrop:
			g.Relocate(glass.Down)
		case Rotate:
			g.RotateActive()
		case HardDrop:
			if _, ok := g.Active(); ok {
				g.Drop()
				s.lock()
			}
		}
	}
	c.Reset()
}
