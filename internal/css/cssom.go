package css

// SelectorKind distinguishes the four selector forms the cascade
// understands (spec.md §3). Unknown selectors still parse their block
// for forward compatibility but match no nodes (spec.md §4.3).
type SelectorKind int

const (
	SelectorType SelectorKind = iota
	SelectorClass
	SelectorID
	SelectorUnknown
)

// Selector is one of Type(name) | Class(name) | Id(name) | Unknown.
type Selector struct {
	Kind SelectorKind
	Name string
}

// ComponentValueKind enumerates the declaration-value variants the
// parser produces.
type ComponentValueKind int

const (
	ValueIdent ComponentValueKind = iota
	ValueKeyword
	ValueNumber
	ValueHash
)

// ComponentValue is a declaration's right-hand side.
type ComponentValue struct {
	Kind   ComponentValueKind
	Str    string
	Number float64
}

// Declaration is one `property: value` pair inside a rule's block.
type Declaration struct {
	Property string
	Value    ComponentValue
}

// Rule is one selector plus its ordered declarations.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// StyleSheet is an ordered list of rules, in source order (the cascade
// has no specificity computation: later declarations win — spec.md
// §4.4 step 2, §9).
type StyleSheet struct {
	Rules []Rule
}
