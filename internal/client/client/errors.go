package client

// Error carries a server status message together with the sentinel it maps
// to, so callers can use errors.Is while still printing what the server said.
type Error struct {
	Sentinel error
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Sentinel
}
