package route

// Location is an area code: 1..10 for real areas, 0 for the Skip marker.
type Location int

// Route is a closed tour of Length locations starting and ending at Start.
type Route []Location

// Area codes and the roles they play in the route rules.
const (
	// Skip is the sentinel that replaces SkipEligible in the compact encoding.
	Skip Location = 0
	// Start is the fixed first and last location (Dirtmouth).
	Start Location = 1

	// TriggerPredecessor followed immediately by TriggerSuccessor enables the skip.
	TriggerPredecessor Location = 4 // Queen's Station
	TriggerSuccessor   Location = 9 // Distant Village
	// SkipEligible is the only location that may be replaced by Skip.
	SkipEligible Location = 7 // King's Station

	// OrderFirst must never be immediately followed by OrderSecond.
	OrderFirst  Location = 5 // Queen's Gardens
	OrderSecond Location = 6 // City Storerooms

	// LateHalf must sit in the second half of the route.
	LateHalf Location = 8 // Resting Grounds

	// Locations is the number of real areas, i.e. the gain matrix order.
	Locations = 10
	// Length is the number of elements in a closed route.
	Length = Locations + 1
	// InteriorLength is the number of mutable positions.
	InteriorLength = Length - 2
	// MinLateIndex is the smallest index LateHalf may occupy.
	MinLateIndex = Length / 2
)

// Clone returns an independent copy of r.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)

	return out
}

// Equal reports whether r and o hold the same locations in the same order.
func (r Route) Equal(o Route) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}

	return true
}

// IndexOf returns the first index of loc in r, or -1.
func (r Route) IndexOf(loc Location) int {
	for i, v := range r {
		if v == loc {
			return i
		}
	}

	return -1
}

// Contains reports whether loc occurs in r.
func (r Route) Contains(loc Location) bool { return r.IndexOf(loc) >= 0 }

// Ints converts r to plain ints, e.g. for logging sinks.
func (r Route) Ints() []int {
	out := make([]int, len(r))
	for i, v := range r {
		out[i] = int(v)
	}

	return out
}

// FromInts builds a Route from plain ints without validating it.
func FromInts(xs ...int) Route {
	out := make(Route, len(xs))
	for i, v := range xs {
		out[i] = Location(v)
	}

	return out
}
