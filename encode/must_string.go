package encode

import (
	"bytes"

	"github.com/signadot/tabflow/reflow"
)

func MustString(lines []reflow.Line, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(lines, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
