// Package lindenmayer implements symbolic string rewriting for L-systems.
// Each curve supplies its own finite alphabet and rewrite rule; this package
// only knows how to expand an initial sequence by repeated rule application.
package lindenmayer

// System describes an L-system over symbol type S: an initial sequence and a
// pure per-symbol rewrite rule.
type System[S any] interface {
	// Initial returns the axiom, the sequence at iteration 0.
	Initial() []S
	// ApplyRule returns the replacement sequence for one symbol. A symbol
	// with no rewrite rule returns itself as a single-element sequence.
	ApplyRule(sym S) []S
}

// Generate expands the system's initial sequence by applying the rewrite rule
// to every symbol, iterations times. Growth is combinatorial in the iteration
// count; callers accept that cost by choosing the iteration.
func Generate[S any](sys System[S], iterations uint) []S {
	seq := sys.Initial()
	for i := uint(0); i < iterations; i++ {
		// Most rules at least double the sequence, so reserve ahead.
		next := make([]S, 0, len(seq)*2)
		for _, sym := range seq {
			next = append(next, sys.ApplyRule(sym)...)
		}
		seq = next
	}
	return seq
}
