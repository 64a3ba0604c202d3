package ast

import (
	"fmt"

	"github.com/dhamidi/yomi/syntax"
	"github.com/dhamidi/yomi/tspath"
)

// NodeFlags carry parse-time markers on a node. Apart from the lazily
// aggregated error bits (see ContainsParseError) flags are written only
// during parsing.
type NodeFlags uint32

const (
	NodeFlagsNone NodeFlags = 0
	// Declared with `let`.
	NodeFlagsLet NodeFlags = 1 << 0
	// Declared with `const`.
	NodeFlagsConst NodeFlags = 1 << 1
	// A namespace declared via dotted-name shorthand (`namespace a.b {}`);
	// the inner declaration is implicitly exported.
	NodeFlagsNestedNamespace NodeFlags = 1 << 2
	// Inside a `declare` context.
	NodeFlagsAmbient NodeFlags = 1 << 3
	// A parse error was reported on this exact node.
	NodeFlagsThisNodeHasError NodeFlags = 1 << 4
	// This node or some descendant carries an error. Only meaningful when
	// NodeFlagsHasAggregatedChildData is also set.
	NodeFlagsThisNodeOrAnySubNodesHasError NodeFlags = 1 << 5
	// The aggregated error bit has been computed and cached.
	NodeFlagsHasAggregatedChildData NodeFlags = 1 << 6
	// Set on a SourceFile whose text may contain `import.meta`, enabling
	// the module-indicator fallback walk.
	NodeFlagsPossiblyContainsImportMeta NodeFlags = 1 << 7

	NodeFlagsBlockScoped = NodeFlagsLet | NodeFlagsConst
)

// Node is the single tree-node shape. Pos and End are byte offsets into
// the source text forming a half-open range; Pos includes the node's
// leading trivia. A node with Pos == End (and a kind other than
// EndOfFile) is a missing node inserted by error recovery.
//
// Parent is a non-owning back-reference; ownership runs strictly
// top-down through Modifiers and Children.
type Node struct {
	Kind      syntax.Kind
	Pos       int
	End       int
	Parent    *Node
	Flags     NodeFlags
	Text      string // decoded text of identifiers and literals
	Modifiers []*Node
	Children  []*Node
}

// AddChild appends child and sets its parent link. Nil children are
// ignored so parse functions can pass through optional results.
func (n *Node) AddChild(child *Node) {
	if child != nil {
		child.Parent = n
		n.Children = append(n.Children, child)
	}
}

// AddModifier appends a modifier keyword or decorator node.
func (n *Node) AddModifier(mod *Node) {
	if mod != nil {
		mod.Parent = n
		n.Modifiers = append(n.Modifiers, mod)
	}
}

func (n *Node) FirstChildOfKind(kind syntax.Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind syntax.Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// NodeIsMissing reports whether node is a zero-width placeholder
// inserted by error recovery.
func NodeIsMissing(node *Node) bool {
	if node == nil {
		return true
	}
	return node.Pos == node.End && node.Kind != syntax.KindEndOfFile
}

// NodeIsPresent is the negation of NodeIsMissing.
func NodeIsPresent(node *Node) bool {
	return !NodeIsMissing(node)
}

// SourceFile is the root node of a parse. It owns the statement list,
// the original text and the diagnostics produced while building the
// tree. The external-module indicator is computed once on first query
// and cached; see GetExternalModuleIndicator.
type SourceFile struct {
	Node
	Text              string
	FileName          string
	ScriptKind        tspath.ScriptKind
	LanguageVariant   tspath.LanguageVariant
	IsDeclarationFile bool
	EndOfFileToken    *Node
	Diagnostics       []*Diagnostic

	externalModuleIndicator         *Node
	externalModuleIndicatorComputed bool
	lineStarts                      []int
}

// Statements returns the file's top-level statement list.
func (f *SourceFile) Statements() []*Node {
	return f.Children
}

// Diagnostic is an immutable record of a lexical or syntactic error.
// Message is a template; when Argument is non-empty the template
// contains one %s verb for it.
type Diagnostic struct {
	File     *SourceFile
	FileName string
	Start    int
	Length   int
	Message  string
	Argument string
}

// Format renders the diagnostic message with its argument applied.
func (d *Diagnostic) Format() string {
	if d.Argument != "" {
		return fmt.Sprintf(d.Message, d.Argument)
	}
	return d.Message
}

// CommentRange marks a trivia span holding a comment. JSDoc is true for
// comments opening with `/**` other than the degenerate `/**/`.
type CommentRange struct {
	Pos                int
	End                int
	Kind               syntax.Kind
	HasTrailingNewLine bool
	JSDoc              bool
}
