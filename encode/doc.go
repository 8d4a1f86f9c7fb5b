// Package encode writes reflowed tablature lines.
//
// # Usage
//
//	lines, err := reflow.Lines(tab, cfg)
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(lines, os.Stdout)
//
//	// with terminal colors
//	err = encode.Encode(lines, os.Stdout,
//	    encode.EncodeColors(encode.NewColors()),
//	    encode.EncodeSeparator(cfg.Separator))
//
// Without colors the output is reflow.Assemble(lines) followed by a newline.
//
// # Related Packages
//
//   - github.com/signadot/tabflow/reflow - produces the lines
package encode
