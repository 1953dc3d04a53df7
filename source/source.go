// Package source provides ready-made sequences to start flu pipelines from:
// lines of text, integer ranges, generated sequences and channels.
package source

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/KasperOmsK/flu"
	"github.com/KasperOmsK/flu/internal/iterx"
)

// Lines returns a Pipe over the lines read from r.
//
// r is not read until the Pipe is iterated. Unless WithRawLines is given,
// every line is trimmed of surrounding whitespace and blank lines are
// skipped. A read error ends the sequence; since a Pipe carries no errors,
// the failure is logged instead.
func Lines(r io.Reader, opts ...Option) flu.Pipe[string] {
	o := newOptions(opts)

	return flu.From(func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		if o.maxLineSize > 0 {
			scanner.Buffer(make([]byte, 0, min(o.maxLineSize, 64*1024)), o.maxLineSize)
		}

		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if !o.raw {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
			}
			if !yield(line) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			o.logger.Error().
				Err(err).
				Int("line", lineNo+1).
				Msg("stopped reading lines")
		}
	})
}

// Stdin returns a Pipe over the lines of standard input. See Lines.
func Stdin(opts ...Option) flu.Pipe[string] {
	return Lines(os.Stdin, opts...)
}

// Range returns a Pipe over the integers in [start, end).
// It is empty when end <= start.
func Range(start, end int64) flu.Pipe[int64] {
	return flu.From(func(yield func(int64) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	})
}

// Iterate returns an infinite Pipe producing seed, next(seed),
// next(next(seed)) and so on. It must be bounded downstream, for example
// with Take or TakeWhile.
func Iterate[T any](seed T, next func(T) T) flu.Pipe[T] {
	return flu.From(func(yield func(T) bool) {
		for v := seed; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// Chan returns a Pipe that receives from ch until it is closed.
func Chan[T any](ch <-chan T) flu.Pipe[T] {
	return flu.From(iterx.FromChan(ch))
}
