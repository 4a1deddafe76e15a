package session

// Frame is passed to every system during one scheduler tick.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *Session
}

func newFrame(dt float64, s *Session) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  s.commands,
		Session:   s,
	}
}
