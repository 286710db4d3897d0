package models

import "time"

// Session is the single admin session. Its last activity is stored next to
// it under its own key.
type Session struct {
	Username       string    `json:"username"`
	LoginTimestamp time.Time `json:"loginTimestamp"`
	Token          string    `json:"token"`
}
