// Package geodata supplies gain matrices for the route optimiser.
//
// Sample returns the fixed 10×10 table used by the reference run. Generate
// draws a fresh table: off-diagonal gains uniform in [-300, 900] rounded to
// one decimal, with the Greenpath→Forgotten Crossroads entry pinned just
// below the smallest positive gain so that transition is always the
// cheapest profitable move.
//
// Row i, column j holds the gain of travelling from area i+1 to area j+1;
// the diagonal is zero and never read.
package geodata
