package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// RepairStep is one named text transform of the best-effort plan repair.
type RepairStep struct {
	Name  string
	Apply func(string) string
}

var (
	fencePrefix   = regexp.MustCompile("(?i)^\\s*```(?:json)?\\s*")
	fenceSuffix   = regexp.MustCompile("\\s*```\\s*$")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	lineBreaks    = regexp.MustCompile(`[\r\n\t]+`)
)

// RepairSteps lists the transforms RepairPlanJSON applies, in order.
// It only handles surrounding prose, markdown fences, stray control characters,
// trailing commas and delimiters missing at the end of the text.
var RepairSteps = []RepairStep{
	{Name: "strip-fence", Apply: stripFence},
	{Name: "strip-control-chars", Apply: stripControlChars},
	{Name: "trim-to-object", Apply: trimToObject},
	{Name: "remove-trailing-commas", Apply: removeTrailingCommas},
	{Name: "collapse-newlines", Apply: collapseNewlines},
	{Name: "balance-delimiters", Apply: balanceDelimiters},
}

// RepairText runs every repair step over raw and returns the resulting text.
func RepairText(raw string) string {
	text := raw
	for _, step := range RepairSteps {
		text = step.Apply(text)
	}
	return text
}

// RepairPlanJSON turns the raw text of an LLM reply into a JSON object.
// A parse failure is reported once; no second repair pass is attempted.
func RepairPlanJSON(raw string) (map[string]any, error) {
	text := RepairText(raw)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &RepairError{Kind: ErrMalformedUpstreamResponse, Cause: err, Text: text}
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, &RepairError{Kind: ErrInvalidPlanShape, Text: text}
	}
	return obj, nil
}

func stripFence(s string) string {
	s = fencePrefix.ReplaceAllString(s, "")
	return fenceSuffix.ReplaceAllString(s, "")
}

func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func trimToObject(s string) string {
	if start := strings.Index(s, "{"); start > 0 {
		s = s[start:]
	}
	if end := strings.LastIndex(s, "}"); end >= 0 {
		s = s[:end+1]
	}
	return s
}

func removeTrailingCommas(s string) string {
	return trailingComma.ReplaceAllString(s, "$1")
}

func collapseNewlines(s string) string {
	return strings.TrimSpace(lineBreaks.ReplaceAllString(s, " "))
}

// balanceDelimiters counts delimiters without regard to string literals.
// Missing brackets are appended before missing braces, which closes the
// common case of an array truncated inside the top-level object.
func balanceDelimiters(s string) string {
	openBraces := strings.Count(s, "{")
	closeBraces := strings.Count(s, "}")
	openBrackets := strings.Count(s, "[")
	closeBrackets := strings.Count(s, "]")

	if openBrackets > closeBrackets {
		s += strings.Repeat("]", openBrackets-closeBrackets)
	}
	if openBraces > closeBraces {
		s += strings.Repeat("}", openBraces-closeBraces)
	}
	return s
}
