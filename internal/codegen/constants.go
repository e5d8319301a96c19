// Package codegen provides code generation helpers and constants.
package codegen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Variable names used in generated code
const (
	InputName    = "input"
	InputLenName = "l"
	OffsetName   = "offset"
	StateName    = "state"
	ActionName   = "action"
	CharName     = "c"
)

// Generated test names
const (
	TestCasesName = "tests"
	TestCaseName  = "tt"
	TestWantName  = "want"
)

// TableName returns the name of the packed transition table for a matcher.
func TableName(name string) string {
	return fmt.Sprintf("%sTable", LowerFirst(name))
}

// NumStatesName returns the name of the state count constant for a matcher.
func NumStatesName(name string) string {
	return fmt.Sprintf("%sNumStates", LowerFirst(name))
}

// SettleName returns the name of the end-of-input helper for a matcher.
func SettleName(name string) string {
	return fmt.Sprintf("%sSettle", LowerFirst(name))
}

// CompiledName returns the name of the ready-to-use matcher value.
func CompiledName(name string) string {
	return "Compiled" + UpperFirst(name)
}

// LowerFirst lowercases the first letter of s. Non-letters are kept.
func LowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// UpperFirst uppercases the first letter of s. Non-letters are kept.
func UpperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
