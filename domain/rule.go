package domain

import "fmt"

// RuleType classifies how a rule's fix value is produced
type RuleType string

const (
	// RuleTypeDeterministic means the fix value is fully computable from syntax alone
	RuleTypeDeterministic RuleType = "deterministic"

	// RuleTypeAI means the fix value requires natural-language synthesis
	RuleTypeAI RuleType = "ai"

	// RuleTypeDetect means no safe automatic fix exists; violations carry no fix
	RuleTypeDetect RuleType = "detect"
)

// RuleLevel controls how a rule's violations are handled
type RuleLevel string

const (
	// RuleLevelFix reports the violation and applies its fix when fixing is requested
	RuleLevelFix RuleLevel = "fix"

	// RuleLevelWarn reports the violation but never applies a fix
	RuleLevelWarn RuleLevel = "warn"

	// RuleLevelOff disables the rule entirely
	RuleLevelOff RuleLevel = "off"
)

// FixType identifies the kind of source edit a fix performs
type FixType string

const (
	FixInsertAttr     FixType = "insert-attr"
	FixReplaceAttr    FixType = "replace-attr"
	FixInsertElement  FixType = "insert-element"
	FixWrapElement    FixType = "wrap-element"
	FixRemoveElement  FixType = "remove-element"
	FixInsertMetadata FixType = "insert-metadata"
)

// UnresolvedPlaceholder is the sentinel carried by AI fixes before resolution.
// The fix engine must never write this value into source files.
const UnresolvedPlaceholder = "__a11y_unresolved__"

// FixValue is a tagged variant: either a literal string or a deferred
// resolver reference. Deferred values are resolved by an explicit
// resolution pass before the apply stage; they are never invoked during
// tree traversal.
type FixValue struct {
	// Literal is the final text to write. Empty while deferred.
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`

	// ResolverID names a registered heuristic resolver for deferred values
	ResolverID string `json:"resolver_id,omitempty" yaml:"resolver_id,omitempty"`
}

// LiteralValue builds a resolved fix value
func LiteralValue(s string) FixValue {
	return FixValue{Literal: s}
}

// DeferredValue builds an unresolved fix value backed by a named resolver
func DeferredValue(resolverID string) FixValue {
	return FixValue{Literal: UnresolvedPlaceholder, ResolverID: resolverID}
}

// IsDeferred reports whether the value still needs resolution
func (v FixValue) IsDeferred() bool {
	return v.ResolverID != "" && v.Literal == UnresolvedPlaceholder
}

// Fix describes a prescribed, possibly deferred, edit resolving a violation.
// Target is a structural handle captured at scan time so the apply stage
// never has to re-locate the node by line number; it is process-local and
// excluded from serialization.
type Fix struct {
	Type      FixType  `json:"type" yaml:"type"`
	Attribute string   `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Value     FixValue `json:"value" yaml:"value"`

	// Target is the element (or text segment) handle set by the rule.
	// The concrete type belongs to the parser package; the fix engine
	// downcasts it.
	Target any `json:"-" yaml:"-"`
}

// Violation is a detected accessibility defect at a specific source location.
// Line and Column are 1-indexed. Element holds a bounded snippet of the
// offending source. The only mutation after scanning is the AI pipeline
// rewriting Fix.Value.
type Violation struct {
	Rule    string `json:"rule" yaml:"rule"`
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Element string `json:"element,omitempty" yaml:"element,omitempty"`
	Message string `json:"message" yaml:"message"`
	Fix     *Fix   `json:"fix,omitempty" yaml:"fix,omitempty"`
}

// Location renders the violation position as file:line:col
func (v *Violation) Location() string {
	return fmt.Sprintf("%s:%d:%d", v.File, v.Line, v.Column)
}

// Fixable reports whether the violation carries an applicable fix
func (v *Violation) Fixable() bool {
	return v.Fix != nil
}

// RuleOptions carries rule-specific settings resolved from configuration
type RuleOptions struct {
	// ScanCustomComponents extends button-type to PascalCase *Button components
	ScanCustomComponents bool `json:"scan_custom_components" mapstructure:"scan_custom_components"`

	// FillAlt makes img-alt flag decorative (empty-alt) images too
	FillAlt bool `json:"fill_alt" mapstructure:"fill_alt"`
}

// RuleSetting is the resolved per-rule configuration entry. Every known
// rule id has exactly one setting after configuration resolution.
type RuleSetting struct {
	Level   RuleLevel   `json:"level"`
	Options RuleOptions `json:"options"`
}
