// Package validation implements declarative contract checking over decoded
// JSON documents. Structural rules are expressed as JSON Schema and checked
// with gojsonschema; cross-field rules are added as individual assertions.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Lexical shapes for reminder fields. Out-of-range values like "25:99" pass
// on purpose: calendar semantics are the server's responsibility.
var (
	TimeShape = regexp.MustCompile(`^\d{2}:\d{2}$`)
	DateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Assertion is one pass/fail condition with a human-readable description.
type Assertion struct {
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
	Detail      string `json:"detail,omitempty"`
}

// Result is an ordered sequence of assertions produced by one validation
// pass. It has no hidden state: validating the same document twice yields
// the same Result.
type Result struct {
	Assertions []Assertion `json:"assertions"`
}

// Check records an assertion with the given outcome.
func (r *Result) Check(passed bool, description, detail string) {
	if passed {
		detail = ""
	}
	r.Assertions = append(r.Assertions, Assertion{
		Description: description,
		Passed:      passed,
		Detail:      detail,
	})
}

func (r *Result) Pass(description string) {
	r.Check(true, description, "")
}

func (r *Result) Fail(description, detail string) {
	r.Check(false, description, detail)
}

// Merge appends all assertions from other, preserving order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Assertions = append(r.Assertions, other.Assertions...)
}

// Valid reports whether every assertion passed.
func (r *Result) Valid() bool {
	for _, a := range r.Assertions {
		if !a.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failed assertions in order.
func (r *Result) Failures() []Assertion {
	var out []Assertion
	for _, a := range r.Assertions {
		if !a.Passed {
			out = append(out, a)
		}
	}
	return out
}

// FailureMessages returns one formatted line per failed assertion.
func (r *Result) FailureMessages() []string {
	failures := r.Failures()
	messages := make([]string, len(failures))
	for i, a := range failures {
		if a.Detail != "" {
			messages[i] = fmt.Sprintf("%s: %s", a.Description, a.Detail)
		} else {
			messages[i] = a.Description
		}
	}
	return messages
}

// AgainstSchema validates doc against a JSON Schema and records the outcome
// as assertions. Schemas are package constants, so a schema that fails to
// compile is recorded as a failed assertion rather than returned as an error.
func AgainstSchema(label string, doc map[string]interface{}, schemaJSON string) *Result {
	r := &Result{}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		r.Fail(fmt.Sprintf("%s schema is checkable", label), err.Error())
		return r
	}

	if result.Valid() {
		r.Pass(fmt.Sprintf("response matches %s schema", label))
		return r
	}
	for _, desc := range result.Errors() {
		r.Fail(fmt.Sprintf("%s schema: %s", label, desc.Field()), desc.Description())
	}
	return r
}

// RequireNonEmptyString asserts that doc[key] is a string with content left
// after trimming whitespace.
func RequireNonEmptyString(r *Result, doc map[string]interface{}, key string) {
	v, ok := doc[key]
	if !ok {
		r.Fail(fmt.Sprintf("%q is present", key), "field missing")
		return
	}
	s, ok := v.(string)
	if !ok {
		r.Fail(fmt.Sprintf("%q is a string", key), fmt.Sprintf("got %T", v))
		return
	}
	r.Check(strings.TrimSpace(s) != "", fmt.Sprintf("%q is non-empty after trimming", key), "value is empty")
}

// RequireShape asserts that doc[key] is a string matching the given lexical
// shape, e.g. HH:MM or YYYY-MM-DD.
func RequireShape(r *Result, doc map[string]interface{}, key string, shape *regexp.Regexp, shapeName string) {
	v, ok := doc[key]
	if !ok {
		r.Fail(fmt.Sprintf("%q is present", key), "field missing")
		return
	}
	s, ok := v.(string)
	if !ok {
		r.Fail(fmt.Sprintf("%q is a string", key), fmt.Sprintf("got %T", v))
		return
	}
	r.Check(shape.MatchString(s),
		fmt.Sprintf("%q matches %s", key, shapeName),
		fmt.Sprintf("got %q", s))
}
