package encode

import "github.com/signadot/tabflow/reflow"

type EncodeOption func(*EncState)

type EncState struct {
	sep   rune
	Color func(reflow.LineKind, ColorAttr, string) string
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeSeparator sets the lane separator used to find lane prefixes when
// coloring. It defaults to reflow.DefaultSeparator.
func EncodeSeparator(r rune) EncodeOption {
	return func(es *EncState) { es.sep = r }
}
