// Package common contains shared constants and sentinel errors used across
// wanttogo components.
package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the
// session token on outbound requests.
const SessionTokenHeaderName = "session_token"

// DefaultSessionCookieName is the cookie holding the signed session token
// for browser clients.
const DefaultSessionCookieName = "wanttogo_session"
