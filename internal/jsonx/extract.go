// Package jsonx recovers well-formed JSON from noisy LLM output. Providers
// are asked for structured output, but models still wrap payloads in markdown
// fences, prepend prose, leave trailing commas, or truncate the final closing
// brackets. The extractor repairs all of these without touching the payload
// itself.
package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when the input contains no JSON value at all.
var ErrNoJSON = errors.New("jsonx: no JSON value found in text")

// Extract returns the first JSON object or array found in text, with
// markdown fences stripped, trailing commas removed, and unbalanced
// brackets closed. Extraction is idempotent: feeding its own output back
// yields the same bytes.
func Extract(text string) (json.RawMessage, error) {
	text = stripFences(strings.TrimSpace(text))

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return nil, ErrNoJSON
	}

	candidate := balance(text[start:])
	candidate = dropTrailingCommas(candidate)

	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("jsonx: recovered text is not valid JSON: %.80s", candidate)
	}
	return json.RawMessage(candidate), nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag. Fences that appear inside the payload are left alone.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		// A fence after leading prose is a wrapper only when the payload
		// starts inside it. A fence appearing after the first bracket sits
		// inside the payload and stays untouched.
		i := strings.Index(text, "```")
		start := strings.IndexAny(text, "{[")
		if i < 0 || !strings.Contains(text[i:], "\n") || (start >= 0 && start < i) {
			return text
		}
		text = text[i:]
	}

	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		tag := strings.TrimSpace(text[:nl])
		if len(tag) <= 8 && !strings.ContainsAny(tag, "{[") {
			text = text[nl+1:]
		}
	}
	if i := strings.LastIndex(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// balance scans from the first opening bracket and returns the substring up
// to the matching close, appending any missing closers when the text ends
// mid-structure. The scan is string-aware: brackets inside quoted strings do
// not affect depth.
func balance(text string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return text[:i+1]
			}
		}
	}

	// Truncated output: close an open string, then unwind the bracket stack.
	var b strings.Builder
	b.WriteString(text)
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// dropTrailingCommas removes commas that directly precede a closing bracket,
// skipping commas inside quoted strings.
func dropTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}

		if c == ',' {
			j := i + 1
			for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				continue // drop the comma
			}
		}

		b.WriteByte(c)
	}
	return b.String()
}
