package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Diff is one line of a line diff.
type Diff struct {
	Op   Op
	Line string
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Diff
	for i := range diffs {
		d := &diffs[i]
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, line := range splitKeep(d.Text) {
			res = append(res, Diff{Op: op, Line: line})
		}
	}
	return res
}

// splitKeep splits text into lines, dropping the newline terminators.
func splitKeep(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Changed reports whether diffs has any insertion or deletion.
func Changed(diffs []Diff) bool {
	for i := range diffs {
		if diffs[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write writes diffs one per line with a "+", "-" or " " prefix, colored
// green and red if colors is set.
func Write(w io.Writer, diffs []Diff, colors bool) error {
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if colors {
		ins.EnableColor()
		del.EnableColor()
	} else {
		ins.DisableColor()
		del.DisableColor()
	}
	var b strings.Builder
	for _, d := range diffs {
		line := d.Op.Prefix() + d.Line
		switch d.Op {
		case Insert:
			line = ins.Sprint(line)
		case Delete:
			line = del.Sprint(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
