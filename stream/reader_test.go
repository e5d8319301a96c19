package stream

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/KromDaniel/tablere/internal/fsm"
)

func TestMatchReader(t *testing.T) {
	m := fsm.MustCompile("a*bc$")
	input := "aaabc\nbc\r\nabcd\n\nbc"

	var got []Line
	err := MatchReader(strings.NewReader(input), m, DefaultConfig(), func(l Line) bool {
		l.Text = append([]byte(nil), l.Text...)
		got = append(got, l)
		return true
	})
	if err != nil {
		t.Fatalf("MatchReader() error = %v", err)
	}

	want := []struct {
		text    string
		offset  int64
		matched bool
	}{
		{"aaabc", 0, true},
		{"bc", 6, true},
		{"abcd", 10, false},
		{"", 15, false},
		{"bc", 16, true},
	}
	if len(got) != len(want) {
		t.Fatalf("MatchReader() reported %d lines, want %d", len(got), len(want))
	}
	for i, w := range want {
		if string(got[i].Text) != w.text || got[i].Offset != w.offset || got[i].Matched != w.matched {
			t.Errorf("line %d = {%q %d %v}, want {%q %d %v}",
				i+1, got[i].Text, got[i].Offset, got[i].Matched, w.text, w.offset, w.matched)
		}
		if got[i].Number != i+1 {
			t.Errorf("line %d has Number %d", i+1, got[i].Number)
		}
	}
}

func TestMatchReaderStopsEarly(t *testing.T) {
	m := fsm.MustCompile(".")
	calls := 0

	err := MatchReader(strings.NewReader("a\nb\nc\n"), m, Config{}, func(l Line) bool {
		calls++
		return l.Number < 2
	})
	if err != nil {
		t.Fatalf("MatchReader() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("callback called %d times, want 2", calls)
	}
}

func TestMatchReaderLineTooLong(t *testing.T) {
	m := fsm.MustCompile("a")
	input := strings.Repeat("a", 64) + "\n"

	err := MatchReader(strings.NewReader(input), m, Config{BufferSize: 16, MaxLineLength: 32}, func(Line) bool {
		return true
	})
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("MatchReader() error = %v, want bufio.ErrTooLong", err)
	}
}

func TestMatchReaderInvalidConfig(t *testing.T) {
	err := MatchReader(strings.NewReader("a"), fsm.MustCompile("a"), Config{BufferSize: -5}, func(Line) bool {
		t.Error("callback called with invalid config")
		return true
	})
	if err == nil {
		t.Error("MatchReader() accepted a negative buffer size")
	}
}

func TestCount(t *testing.T) {
	lines, matched, err := Count(strings.NewReader("abc\nxbc\nzzz\n"), fsm.MustCompile(".bc"), DefaultConfig())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if lines != 3 || matched != 2 {
		t.Errorf("Count() = (%d, %d), want (3, 2)", lines, matched)
	}
}
