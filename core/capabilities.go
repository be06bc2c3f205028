package core

import (
	"github.com/phantompay1/EVA/matrix"
	"github.com/phantompay1/EVA/optimize"
	"github.com/phantompay1/EVA/signal"
	"github.com/phantompay1/EVA/vision"
)

// Capabilities returns every operation class the dispatcher can route,
// as the ordered concatenation of the engine lists: matrix, then
// signal, then vision, then optimization. Order is part of the
// contract; callers index into it.
func (d *Dispatcher) Capabilities() []string {
	caps := make([]string, 0, 32)
	caps = append(caps, matrix.Capabilities()...)
	caps = append(caps, signal.Capabilities()...)
	caps = append(caps, vision.Capabilities()...)
	caps = append(caps, optimize.Capabilities()...)
	return caps
}
