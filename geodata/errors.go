package geodata

import "errors"

// ErrNoPositiveGain is returned by Generate when the drawn table has no
// positive off-diagonal entry to pin the Greenpath→Forgotten Crossroads gain to.
var ErrNoPositiveGain = errors.New("geodata: no positive gain to pin against")
