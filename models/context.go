package models

// SessionContext carries the authenticated caller's identity and request
// metadata through the create pipeline and into audit records. It is built
// once per request by the transport layer.
type SessionContext struct {
	UserID         string
	SessionID      string
	IPAddress      string
	UserAgent      string
	XForwardedFor  string
	AcceptLanguage string
}

// Language returns the caller's language, defaulting to "en".
func (c *SessionContext) Language() string {
	if c == nil || c.AcceptLanguage == "" {
		return "en"
	}
	return c.AcceptLanguage
}
