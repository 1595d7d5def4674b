package predicate

import "github.com/pod-network/pod2-go/internal/pod2/pod2err"

// Builder resolves textual wildcard names to stable indices and
// accumulates statement templates in order, then finalizes a
// CustomPredicate via a fluent chain of calls over an append-only
// template list with a name-to-index side table.
type Builder struct {
	conjunction bool
	wildcards   map[string]int
	order       []string
	argsLen     int
	templates   []StatementTemplate
}

// NewBuilder starts a custom predicate builder. positionalArgs names the
// predicate's formal (positional) arguments, in order; their wildcard
// indices are reserved first so that index < argsLen exactly identifies a
// formal argument.
func NewBuilder(conjunction bool, positionalArgs ...string) *Builder {
	b := &Builder{
		conjunction: conjunction,
		wildcards:   make(map[string]int),
		argsLen:     len(positionalArgs),
	}
	for _, name := range positionalArgs {
		b.resolve(name)
	}
	return b
}

// Wildcard resolves name to a stable wildcard index, registering a fresh
// existential index on first use.
func (b *Builder) Wildcard(name string) HoW {
	return Wildcard(b.resolve(name))
}

func (b *Builder) resolve(name string) int {
	if idx, ok := b.wildcards[name]; ok {
		return idx
	}
	idx := len(b.order)
	b.wildcards[name] = idx
	b.order = append(b.order, name)
	return idx
}

// AddTemplate appends a statement template invoking pred with args, in
// the order templates are added.
func (b *Builder) AddTemplate(pred PredRef, args ...StatementTmplArg) *Builder {
	b.templates = append(b.templates, StatementTemplate{Predicate: pred, Args: args})
	return b
}

// Build finalizes the predicate. It fails if no templates were added or
// if a disjunction predicate was given zero templates to choose among.
func (b *Builder) Build() (CustomPredicate, error) {
	if len(b.templates) == 0 {
		return CustomPredicate{}, pod2err.New(pod2err.IllFormedOperation, "custom predicate must have at least one template")
	}
	return CustomPredicate{
		Conjunction: b.conjunction,
		Templates:   append([]StatementTemplate(nil), b.templates...),
		ArgsLen:     b.argsLen,
	}, nil
}
