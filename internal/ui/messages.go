package ui

import "time"

// tickMsg is sent on a timer to keep the UI refreshed
type tickMsg time.Time

// initialSearchMsg runs the first search for a restored query
type initialSearchMsg struct{}
