package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Matcher is satisfied by compiled patterns.
type Matcher interface {
	MatchBytes(input []byte) bool
}

// Line is one record read from the stream.
//
// WARNING: Text points into an internal buffer that is reused after the
// callback returns. Copy it if it must be retained.
type Line struct {
	// Text is the record without its line terminator.
	Text []byte

	// Number is the 1-based line number.
	Number int

	// Offset is the absolute byte position of the line start.
	Offset int64

	// Matched is the result of matching Text.
	Matched bool
}

// MatchReader matches every line of r against m and passes the result to
// fn. Scanning stops early when fn returns false.
func MatchReader(r io.Reader, m Matcher, cfg Config, fn func(Line) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.ApplyDefaults()

	var advance int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, cfg.BufferSize), cfg.MaxLineLength)
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		n, token, err := bufio.ScanLines(data, atEOF)
		if token != nil {
			advance = n
		}
		return n, token, err
	})

	var offset int64
	number := 0
	for scanner.Scan() {
		number++
		text := scanner.Bytes()
		line := Line{
			Text:    text,
			Number:  number,
			Offset:  offset,
			Matched: m.MatchBytes(text),
		}
		offset += int64(advance)
		if !fn(line) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("stream: line %d longer than %d bytes: %w", number+1, cfg.MaxLineLength, err)
		}
		return fmt.Errorf("stream: read failed: %w", err)
	}
	return nil
}

// Count returns how many lines of r are read and how many of them match.
func Count(r io.Reader, m Matcher, cfg Config) (lines, matched int, err error) {
	err = MatchReader(r, m, cfg, func(l Line) bool {
		lines++
		if l.Matched {
			matched++
		}
		return true
	})
	return lines, matched, err
}
