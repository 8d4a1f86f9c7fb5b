// Package format selects how structural listings are written.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	err = format.Write(os.Stdout, f, summaries)
//
// # Related Packages
//
//   - github.com/signadot/tabflow/reflow - produces the summaries
package format
