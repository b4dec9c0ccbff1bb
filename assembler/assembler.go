package assembler

import (
	"fmt"
	"log"
	"strings"
)

// Assembler holds the state for one assembly run.
type Assembler struct {
	labels LabelMap
	strict bool
	log    *log.Logger
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		labels: make(LabelMap),
	}
}

// SetStrict makes references to undefined labels an error instead of leaving them in place.
func (asm *Assembler) SetStrict(strict bool) *Assembler {
	asm.strict = strict
	return asm
}

// SetLogger enables progress logging. A nil logger disables it.
func (asm *Assembler) SetLogger(l *log.Logger) *Assembler {
	asm.log = l
	return asm
}

// Labels returns the table built by the last successful Assemble.
func (asm *Assembler) Labels() LabelMap {
	return asm.labels
}

// Assemble expands macros, resolves labels and returns the final listing.
func (asm *Assembler) Assemble(src string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	expanded, err := ExpandLines(lines)
	if err != nil {
		return "", err
	}
	asm.logf("expanded %d source lines to %d", len(lines), len(expanded))

	labels := BuildLabelMap(expanded)
	asm.logf("found %d labels", len(labels))

	resolved := Substitute(expanded, labels)
	if missing := Unresolved(resolved); len(missing) > 0 {
		if asm.strict {
			return "", fmt.Errorf("resolving labels: %w", &UnresolvedError{Label: missing[0]})
		}
		asm.logf("%d unresolved references left in place", len(missing))
	}

	listing := RemoveBlank(LabelsToComments(resolved))
	asm.labels = labels
	asm.logf("emitted %d lines", len(listing))
	return Format(listing), nil
}

// Assemble runs a fresh non-strict Assembler over src.
func Assemble(src string) (string, error) {
	return New().Assemble(src)
}

func (asm *Assembler) logf(format string, v ...any) {
	if asm.log != nil {
		asm.log.Printf(format, v...)
	}
}
