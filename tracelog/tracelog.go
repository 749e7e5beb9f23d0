// Package tracelog adapts the propagator's trace levels onto
// github.com/hashicorp/go-hclog, the way the rest of the pack wires up a
// leveled logger rather than printf-ing to stderr.
package tracelog

import (
	hclog "github.com/hashicorp/go-hclog"
)

// Level is one of six trace verbosities: 0 is silent, 5 logs every slot
// write.
type Level int

const (
	Off Level = iota
	Error
	Warn
	Info
	Debug
	Trace
)

func (l Level) hclogLevel() hclog.Level {
	switch l {
	case Off:
		return hclog.Off
	case Error:
		return hclog.Error
	case Warn:
		return hclog.Warn
	case Info:
		return hclog.Info
	case Debug:
		return hclog.Debug
	default:
		return hclog.Trace
	}
}

// A Logger records the propagator's four event classes: literal
// assignments, contradictions, variant decisions and sure promotions.
type Logger struct {
	hc hclog.Logger
}

// New builds a Logger at the given level, writing to os.Stderr.
func New(level Level) Logger {
	return Logger{hc: hclog.New(&hclog.LoggerOptions{
		Name:  "propsat",
		Level: level.hclogLevel(),
	})}
}

// Discard is a Logger that drops every event; it is the zero value's
// effective behavior but is spelled out for callers that want to be
// explicit about it.
func Discard() Logger {
	return Logger{hc: hclog.NewNullLogger()}
}

func (l Logger) logger() hclog.Logger {
	if l.hc == nil {
		return hclog.NewNullLogger()
	}
	return l.hc
}

// Assign records a node (or, from dpll, a variable) being assigned a
// permanent or tentative value.
func (l Logger) Assign(name string, value bool, hyp string, variant int) {
	l.logger().Debug("assign", "lit", name, "value", value, "hyp", hyp, "variant", variant)
}

// Contradiction records a node whose derived value conflicts with a value
// already on the same track.
func (l Logger) Contradiction(node string, hyp string, variant int) {
	l.logger().Warn("contradiction", "node", node, "hyp", hyp, "variant", variant)
}

// Decision records sat3's branch on a variant's hypothesis.
func (l Logger) Decision(node string, variant int, hyp string) {
	l.logger().Info("decision", "node", node, "variant", variant, "hyp", hyp)
}

// Sure records a value being marked certain (as opposed to merely derived).
func (l Logger) Sure(node string, hyp string, variant int) {
	l.logger().Trace("sure", "node", node, "hyp", hyp, "variant", variant)
}
