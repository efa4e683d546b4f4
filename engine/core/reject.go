package core

import "log"

// RejectLog reports configuration errors without flooding the log: an
// error is printed when it first appears or changes.
type RejectLog struct {
	last string
}

// Observe records err. It returns true when err is new and was logged.
// A nil err clears the latch.
func (l *RejectLog) Observe(err error) bool {
	if err == nil {
		l.last = ""
		return false
	}
	msg := err.Error()
	if msg == l.last {
		return false
	}
	l.last = msg
	log.Printf("Rejected configuration: %v", err)
	return true
}
