package absorb

import (
	"io"
	"log"
)

// edgeLog reports a condition once when it appears and once when it clears,
// so a misconfiguration that persists for thousands of ticks produces two lines
// Both lines carry the component tag the condition was raised under
type edgeLog struct {
	logger *log.Logger
	raised map[string]string
}

func newEdgeLog(l *log.Logger) *edgeLog {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &edgeLog{logger: l, raised: make(map[string]string)}
}

func (e *edgeLog) Raise(tag, key, format string, args ...any) {
	if _, ok := e.raised[key]; ok {
		return
	}
	e.raised[key] = tag
	e.logger.Printf("["+tag+"] "+format, args...)
}

func (e *edgeLog) Clear(key string) {
	tag, ok := e.raised[key]
	if !ok {
		return
	}
	delete(e.raised, key)
	e.logger.Printf("[%s] %s resolved", tag, key)
}

func (e *edgeLog) Printf(format string, args ...any) {
	e.logger.Printf(format, args...)
}
