package debug

import (
	"encoding/json"
	"fmt"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, []string, []int:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, msg, args...)
}
