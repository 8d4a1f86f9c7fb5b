// Package reflow rewraps fixed-pitch tablature to a bounded display width.
//
// Tablature arrives as text with one lane per instrument string, for
// example
//
//	e|-----0---3--
//	B|---1--------
//	G|-0----------
//	D|------------
//	A|------------
//	E|------------
//
// Every run of [Config.LaneCount] consecutive lines that each contain the
// separator forms a lane block. Blocks wider than [Config.MaxWidth] are cut
// into segments of [Config.SegmentWidth] columns, all lanes at the same
// offsets, and every segment after the first repeats the lane prefix
// ("e|", "B|", ...) so lanes stay identifiable. Split blocks get a
// "--- Part k/m ---" label per segment. Lines outside complete blocks pass
// through unchanged.
//
// # Usage
//
//	out, err := reflow.Reflow(tab, reflow.Default())
//
//	// narrower display, 4 string bass
//	cfg := reflow.New(reflow.WithLaneCount(4), reflow.WithMaxWidth(60), reflow.WithSegmentWidth(60))
//	out, err = reflow.Reflow(tab, cfg)
//
// The only error is an invalid [Config], which wraps [ErrConfig]. Malformed
// tablature never errors, it is passed through.
//
// Everything is computed per call from the input, so all functions are safe
// for concurrent use.
//
// # Related Packages
//
//   - github.com/signadot/tabflow/sanitize - control sequence removal
//   - github.com/signadot/tabflow/encode - write reflowed lines, with color
//   - github.com/signadot/tabflow/config - load a Config from yaml and env
package reflow
