package utils

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrInvalidRequest            = errors.New("invalid request")
	ErrUpstream                  = errors.New("upstream error")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
	ErrInvalidPlanShape          = errors.New("invalid plan shape")
	ErrPlanNotFound              = errors.New("travel plan not found")
	ErrExpenseNotFound           = errors.New("expense not found")
	ErrInvalidExpense            = errors.New("invalid expense")
)

// RepairError reports a sanitizer failure together with the text that could not be parsed.
type RepairError struct {
	Kind  error
	Cause error
	Text  string
}

func (e *RepairError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%v: %s", e.Kind, snippet(e.Text))
	}
	return fmt.Sprintf("%v: %v: %s", e.Kind, e.Cause, snippet(e.Text))
}

func (e *RepairError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

const maxSnippet = 500

// snippet cuts s to at most maxSnippet bytes without splitting a UTF-8 sequence.
func snippet(s string) string {
	if len(s) <= maxSnippet {
		return s
	}
	cut := maxSnippet
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
