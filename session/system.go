package session

// System is a per-tick behaviour. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
