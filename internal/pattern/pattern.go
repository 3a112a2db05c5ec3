// Package pattern compiles the regular expressions used by templates. Every
// pattern is anchored so that it must match a whole directory name.
package pattern

import (
	"fmt"
	"regexp"
)

// Matcher accepts or rejects candidate names.
type Matcher interface {
	// Match reports whether s is accepted.
	Match(s string) bool
	// String returns the pattern source as written in the template.
	String() string
}

// CompileError is returned when the engine rejects a pattern string.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Anchor wraps src with start and end anchors. The group keeps alternations
// inside the anchors: "a|b" becomes "^(?:a|b)$".
func Anchor(src string) string {
	return "^(?:" + src + ")$"
}

// Simple is a single anchored pattern.
type Simple struct {
	source string
	re     *regexp.Regexp
}

// Compile compiles src anchored.
func Compile(src string) (*Simple, error) {
	re, err := regexp.Compile(Anchor(src))
	if err != nil {
		return nil, &CompileError{Pattern: src, Err: err}
	}
	return &Simple{source: src, re: re}, nil
}

// Match implements Matcher.
func (s *Simple) Match(name string) bool {
	return s.re.MatchString(name)
}

func (s *Simple) String() string {
	return s.source
}

// Complex accepts names matched by a positive pattern and rejected by a
// negative one.
type Complex struct {
	positive *Simple
	negative *Simple
}

// CompileComplex compiles both halves anchored.
func CompileComplex(positive, negative string) (*Complex, error) {
	pos, err := Compile(positive)
	if err != nil {
		return nil, err
	}
	neg, err := Compile(negative)
	if err != nil {
		return nil, err
	}
	return &Complex{positive: pos, negative: neg}, nil
}

// Match implements Matcher.
func (c *Complex) Match(name string) bool {
	return c.positive.Match(name) && !c.negative.Match(name)
}

// String renders both halves the way they appear in a template.
func (c *Complex) String() string {
	return fmt.Sprintf("%q %q", c.positive.source, c.negative.source)
}

// Positive returns the source of the pattern that must match.
func (c *Complex) Positive() string { return c.positive.source }

// Negative returns the source of the pattern that must not match.
func (c *Complex) Negative() string { return c.negative.source }
