// Package compiler lowers a user-level MainPod builder to the fixed-shape
// slot table: signed-pod region, main-pod region, and local region, with
// literal hoisting, new-entry synthesis, and back-reference resolution.
// Params follows a sizing-knob-struct-plus-Validate-plus-fluent-With*-
// setters shape throughout.
package compiler

import "github.com/pod-network/pod2-go/internal/pod2/pod2err"

// Params fixes every list length a compiled MainPod's flat slot table
// will have.
type Params struct {
	MaxInputSignedPods  int
	MaxInputMainPods    int
	MaxStatements       int
	MaxSignedPodValues  int
	MaxPublicStatements int
	MaxStatementArgs    int
	MaxOperationArgs    int
}

// DefaultParams returns the external-interface defaults.
func DefaultParams() Params {
	return Params{
		MaxInputSignedPods:  3,
		MaxInputMainPods:    3,
		MaxStatements:       20,
		MaxSignedPodValues:  8,
		MaxPublicStatements: 10,
		MaxStatementArgs:    5,
		MaxOperationArgs:    5,
	}
}

// MaxPrivStatements returns max_statements - max_public_statements.
func (p Params) MaxPrivStatements() int {
	return p.MaxStatements - p.MaxPublicStatements
}

// Validate rejects a Params whose dimensions cannot form a valid layout.
func (p Params) Validate() error {
	if p.MaxInputSignedPods < 0 || p.MaxInputMainPods < 0 || p.MaxStatements < 0 ||
		p.MaxSignedPodValues < 0 || p.MaxPublicStatements < 0 || p.MaxStatementArgs < 0 ||
		p.MaxOperationArgs < 0 {
		return pod2err.New(pod2err.BoundExceeded, "Params fields must be non-negative")
	}
	if p.MaxPublicStatements > p.MaxStatements {
		return pod2err.New(pod2err.BoundExceeded, "max_public_statements cannot exceed max_statements")
	}
	return nil
}

// WithMaxInputSignedPods sets the signed-pod input bound.
func (p Params) WithMaxInputSignedPods(n int) Params { p.MaxInputSignedPods = n; return p }

// WithMaxInputMainPods sets the main-pod input bound.
func (p Params) WithMaxInputMainPods(n int) Params { p.MaxInputMainPods = n; return p }

// WithMaxStatements sets the local-statement bound.
func (p Params) WithMaxStatements(n int) Params { p.MaxStatements = n; return p }

// WithMaxSignedPodValues sets the per-signed-pod value-row bound.
func (p Params) WithMaxSignedPodValues(n int) Params { p.MaxSignedPodValues = n; return p }

// WithMaxPublicStatements sets the per-input-pod public-statement bound.
func (p Params) WithMaxPublicStatements(n int) Params { p.MaxPublicStatements = n; return p }

// WithMaxStatementArgs sets the per-statement argument bound.
func (p Params) WithMaxStatementArgs(n int) Params { p.MaxStatementArgs = n; return p }

// WithMaxOperationArgs sets the per-operation argument bound.
func (p Params) WithMaxOperationArgs(n int) Params { p.MaxOperationArgs = n; return p }

// StatementsLen returns the length of the compiled flat statements array.
func (p Params) StatementsLen() int {
	return p.MaxInputSignedPods*p.MaxSignedPodValues +
		p.MaxInputMainPods*p.MaxPublicStatements +
		p.MaxStatements
}
