package harness

import (
	"runtime"
	"runtime/debug"
)

// Session tracks heap growth between StartSession and Stop.
//
// The collector is switched off while a session is open, so nothing
// allocated inside the window is reclaimed before Peak reads it: the
// bytes allocated so far equal the peak heap growth of the window.
// Sessions must not overlap.
type Session struct {
	gcPercent int
	start     runtime.MemStats
	stopped   bool
}

var open *Session

// StartSession collects garbage left over from earlier work and opens a
// new tracking window. Callers must Stop it, usually with defer.
func StartSession() *Session {
	if open != nil {
		panic("harness: measurement session already open")
	}
	runtime.GC()
	s := &Session{gcPercent: debug.SetGCPercent(-1)}
	runtime.ReadMemStats(&s.start)
	open = s
	return s
}

// Peak returns the bytes allocated on the heap since the session started.
func (s *Session) Peak() uint64 {
	var now runtime.MemStats
	runtime.ReadMemStats(&now)
	return now.TotalAlloc - s.start.TotalAlloc
}

// Stop restores the collector. Calling it again is a no-op.
func (s *Session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	debug.SetGCPercent(s.gcPercent)
	if open == s {
		open = nil
	}
}
