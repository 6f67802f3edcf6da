package curves

import (
	"iter"

	"fractal-explorer/internal/lindenmayer"
	"fractal-explorer/internal/turtle"
)

// lsystemProgram provides the shared plumbing for curves defined by an
// L-system: it expands the symbol sequence once per configuration and
// interprets it lazily, one symbol to one turtle step.
type lsystemProgram[S any] struct {
	system     lindenmayer.System[S]
	iterations uint
	interpret  func(S) turtle.Step
	init       []turtle.Step

	sequence []S // expanded on first use, reused across render passes
}

func (p *lsystemProgram[S]) InitSteps() []turtle.Step {
	return p.init
}

func (p *lsystemProgram[S]) Steps() iter.Seq[turtle.Step] {
	if p.sequence == nil {
		p.sequence = lindenmayer.Generate(p.system, p.iterations)
	}
	seq := p.sequence
	return func(yield func(turtle.Step) bool) {
		for _, sym := range seq {
			if !yield(p.interpret(sym)) {
				return
			}
		}
	}
}
