// Package demo holds the scripted demonstrations printed by cmd/roster and
// cmd/fleet.
package demo

import (
	"fmt"
	"io"
	"strings"
)

// rule is the separator printed between the fleet demo and its bonus round
var rule = strings.Repeat("=", 50)

// script writes narration lines and remembers the first write error so the
// demos can print without checking every line.
type script struct {
	w   io.Writer
	err error
}

func (s *script) line(args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, args...)
}

func (s *script) lines(items ...fmt.Stringer) {
	for _, item := range items {
		s.line(item.String())
	}
}

func (s *script) texts(items []string) {
	for _, item := range items {
		s.line(item)
	}
}
