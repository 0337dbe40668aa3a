package route

// Area describes one map location.
type Area struct {
	Code     Location
	Initials string
	Name     string
}

// Areas lists every location code with its initials, Skip first.
var Areas = []Area{
	{Skip, "Skip KS", "King's Station (skipped)"},
	{Start, "D", "Dirtmouth"},
	{2, "FC", "Forgotten Crossroads"},
	{3, "G", "Greenpath"},
	{TriggerPredecessor, "QS", "Queen's Station"},
	{OrderFirst, "QG", "Queen's Gardens"},
	{OrderSecond, "CS", "City Storerooms"},
	{SkipEligible, "KS", "King's Station"},
	{LateHalf, "RG", "Resting Grounds"},
	{TriggerSuccessor, "DV", "Distant Village"},
	{10, "SN", "Stag Nest"},
}

// AreaOf returns the Area for code, or false for an unknown code.
func AreaOf(code Location) (Area, bool) {
	if code < Skip || int(code) >= len(Areas) {
		return Area{}, false
	}

	return Areas[code], true
}

// Initials maps each location of r to its area initials; unknown codes map to "?".
func Initials(r Route) []string {
	out := make([]string, len(r))
	for i, v := range r {
		if a, ok := AreaOf(v); ok {
			out[i] = a.Initials
			continue
		}
		out[i] = "?"
	}

	return out
}
