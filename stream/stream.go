// Package stream provides line-oriented matching over an io.Reader.
//
// Every newline-separated record is matched on its own and reported to a
// callback together with its position in the stream.
//
// Example usage:
//
//	file, _ := os.Open("samples.txt")
//	defer file.Close()
//
//	re := tablere.MustCompile("a*bc$")
//	err := stream.MatchReader(file, re, stream.DefaultConfig(), func(l stream.Line) bool {
//	    fmt.Printf("%d: %q => %v\n", l.Number, l.Text, l.Matched)
//	    return true // continue
//	})
package stream

import "fmt"

// Config configures line scanning.
type Config struct {
	// BufferSize is the initial scan buffer size.
	// Default: 64KB (65536).
	BufferSize int

	// MaxLineLength is the longest line accepted before scanning fails.
	// The buffer grows up to this size on demand.
	// Default: 1MB.
	MaxLineLength int
}

const (
	defaultBufferSize    = 64 * 1024
	defaultMaxLineLength = 1024 * 1024
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:    defaultBufferSize,
		MaxLineLength: defaultMaxLineLength,
	}
}

// Error types for streaming operations.

// ErrBufferTooSmall is returned when Config.MaxLineLength is less than
// Config.BufferSize.
type ErrBufferTooSmall struct {
	Requested int
	Minimum   int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("stream: max line length %d below buffer size %d", e.Requested, e.Minimum)
}

// Validate validates the Config and returns an error if invalid.
// Zero values are valid and replaced by ApplyDefaults.
func (c Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("stream: negative buffer size %d", c.BufferSize)
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("stream: negative max line length %d", c.MaxLineLength)
	}
	if c.MaxLineLength > 0 && c.MaxLineLength < c.BufferSize {
		return ErrBufferTooSmall{Requested: c.MaxLineLength, Minimum: c.BufferSize}
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	result := c

	if result.BufferSize == 0 {
		result.BufferSize = defaultBufferSize
	}
	if result.MaxLineLength == 0 {
		result.MaxLineLength = defaultMaxLineLength
	}
	// Never start with a buffer larger than a line may be.
	if result.BufferSize > result.MaxLineLength {
		result.BufferSize = result.MaxLineLength
	}

	return result
}
