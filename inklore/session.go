package inklore

// Session is an immutable credential snapshot. Every transport call receives
// the Session that was installed on the client at the moment the call was
// issued; installing a new Session never affects requests already in flight.
// A nil Session is anonymous.
type Session struct {
	Token    string
	Username string
}

// LoggedIn reports whether the session carries a token.
func (s *Session) LoggedIn() bool { return s != nil && s.Token != "" }
