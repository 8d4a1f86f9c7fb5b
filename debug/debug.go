package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Segment  bool
	Rewrap   bool
	Sanitize bool
	Source   bool
	Config   bool
}

var (
	d *debug

	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Segment = boolEnv("TABFLOW_DEBUG_SEGMENT")
	d.Rewrap = boolEnv("TABFLOW_DEBUG_REWRAP")
	d.Sanitize = boolEnv("TABFLOW_DEBUG_SANITIZE")
	d.Source = boolEnv("TABFLOW_DEBUG_SOURCE")
	d.Config = boolEnv("TABFLOW_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Segment() bool {
	return d.Segment
}
func Rewrap() bool {
	return d.Rewrap
}
func Sanitize() bool {
	return d.Sanitize
}
func Source() bool {
	return d.Source
}
func Config() bool {
	return d.Config
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

func LogAny(v any) {
	outMu.Lock()
	defer outMu.Unlock()
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
