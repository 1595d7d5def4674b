package compiler

import (
	"github.com/pod-network/pod2-go/internal/pod2/pod2err"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
)

// Compiled is the fixed-shape output of laying out a Builder: the flat
// statements array (signed-pod region, main-pod region, local region, in
// that order) plus, for every local statement slot, the back-resolved
// indices of its operation's inputs and whether the slot is public.
type Compiled struct {
	Params           Params
	Statements       []statement.Statement
	LocalOperations  []statement.Operation
	OperationArgRefs [][]int
	LocalPublic      []bool
}

// Compile lowers b to its fixed-shape representation. Running Compile
// twice on the same, unmodified builder yields identical results: the
// flat array and reference indices are pure functions of the builder's
// ordered state, never of map iteration.
func (b *Builder) Compile() (*Compiled, error) {
	statements := make([]statement.Statement, 0, b.params.StatementsLen())

	for i := 0; i < b.params.MaxInputSignedPods; i++ {
		var pub []statement.Statement
		if i < len(b.signedPodInputs) {
			pub = b.signedPodInputs[i].PubStatements()
		}
		if len(pub) > b.params.MaxSignedPodValues {
			return nil, pod2err.New(pod2err.BoundExceeded, "signed pod has more public values than max_signed_pod_values")
		}
		for j := 0; j < b.params.MaxSignedPodValues; j++ {
			if j < len(pub) {
				statements = append(statements, pub[j])
			} else {
				statements = append(statements, statement.NoneStatement)
			}
		}
	}

	for i := 0; i < b.params.MaxInputMainPods; i++ {
		var pub []statement.Statement
		if i < len(b.mainPodInputs) {
			pub = b.mainPodInputs[i].PubStatements()
		}
		if len(pub) > b.params.MaxPublicStatements {
			return nil, pod2err.New(pod2err.BoundExceeded, "main pod has more public statements than max_public_statements")
		}
		for j := 0; j < b.params.MaxPublicStatements; j++ {
			if j < len(pub) {
				statements = append(statements, pub[j])
			} else {
				statements = append(statements, statement.NoneStatement)
			}
		}
	}

	localStart := len(statements)
	if len(b.pairs) > b.params.MaxStatements {
		return nil, pod2err.New(pod2err.BoundExceeded, "too many local statements")
	}
	for i := 0; i < b.params.MaxStatements; i++ {
		if i < len(b.pairs) {
			statements = append(statements, b.pairs[i].statement)
		} else {
			statements = append(statements, statement.NoneStatement)
		}
	}

	localOps := make([]statement.Operation, b.params.MaxStatements)
	argRefs := make([][]int, b.params.MaxStatements)
	public := make([]bool, b.params.MaxStatements)
	for i, pair := range b.pairs {
		localOps[i] = pair.operation
		public[i] = pair.public
		if len(pair.operation.Inputs) > b.params.MaxOperationArgs {
			return nil, pod2err.New(pod2err.BoundExceeded, "too many operation arguments")
		}
		refs := make([]int, len(pair.operation.Inputs))
		for k, in := range pair.operation.Inputs {
			idx, err := resolveIndex(statements, in)
			if err != nil {
				return nil, err
			}
			refs[k] = idx
		}
		argRefs[i] = refs
	}
	_ = localStart

	return &Compiled{
		Params:           b.params,
		Statements:       statements,
		LocalOperations:  localOps,
		OperationArgRefs: argRefs,
		LocalPublic:      public,
	}, nil
}

// resolveIndex scans forward from slot 0 for the first statement
// structurally equal to target, per the back-reference resolution rule:
// failure here means the builder produced an operation input that isn't
// actually present in the compiled table, which is a bug, not a
// recoverable runtime condition.
func resolveIndex(statements []statement.Statement, target statement.Statement) (int, error) {
	for i, s := range statements {
		if s.Equal(target) {
			return i, nil
		}
	}
	return 0, pod2err.New(pod2err.InvalidDeduction, "back-reference resolution failed: operation input not found in compiled table")
}

// PublicStatements returns the subset of the local region flagged
// public, in local-slot order.
func (c *Compiled) PublicStatements() []statement.Statement {
	base := c.Params.MaxInputSignedPods*c.Params.MaxSignedPodValues +
		c.Params.MaxInputMainPods*c.Params.MaxPublicStatements
	var out []statement.Statement
	for i, pub := range c.LocalPublic {
		if pub {
			out = append(out, c.Statements[base+i])
		}
	}
	return out
}
