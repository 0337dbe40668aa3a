package route

// TriggerHolds reports whether TriggerPredecessor is immediately followed by
// TriggerSuccessor somewhere in r. Both must be present.
func TriggerHolds(r Route) bool {
	p := r.IndexOf(TriggerPredecessor)
	if p < 0 || p+1 >= len(r) {
		return false
	}

	return r[p+1] == TriggerSuccessor
}

// FixPlaceholder puts SkipEligible back into the Skip slot when the trigger
// adjacency no longer holds. It edits r in place and returns it so calls can
// be chained. Applying it twice is the same as applying it once.
//
// Complexity: O(n).
func FixPlaceholder(r Route) Route {
	i := r.IndexOf(Skip)
	if i < 0 {
		return r
	}
	if !TriggerHolds(r) {
		r[i] = SkipEligible
	}

	return r
}
