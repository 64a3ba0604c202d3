package ast

import (
	"testing"

	"github.com/dhamidi/yomi/syntax"
)

func node(kind syntax.Kind, pos, end int, children ...*Node) *Node {
	n := &Node{Kind: kind, Pos: pos, End: end}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func ident(name string, pos int) *Node {
	n := node(syntax.KindIdentifier, pos, pos+len(name))
	n.Text = name
	return n
}

func TestAddChild(t *testing.T) {
	parent := node(syntax.KindBinaryExpression, 0, 5)
	child := ident("a", 0)
	parent.AddChild(child)
	parent.AddChild(nil)
	if len(parent.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(parent.Children))
	}
	if child.Parent != parent {
		t.Error("AddChild should set the parent link")
	}
}

func TestNodeIsMissing(t *testing.T) {
	if !NodeIsMissing(nil) {
		t.Error("nil should be missing")
	}
	if !NodeIsMissing(node(syntax.KindIdentifier, 3, 3)) {
		t.Error("zero-width node should be missing")
	}
	if NodeIsMissing(node(syntax.KindEndOfFile, 3, 3)) {
		t.Error("the end-of-file token is always present")
	}
	if NodeIsMissing(ident("x", 0)) {
		t.Error("a real node should be present")
	}
}

func TestGetModifierFlags(t *testing.T) {
	decl := node(syntax.KindFunctionDeclaration, 0, 10)
	decl.AddModifier(node(syntax.KindExportKeyword, 0, 6))
	decl.AddModifier(node(syntax.KindAsyncKeyword, 7, 12))
	flags := GetModifierFlags(decl)
	if flags&ModifierFlagsExport == 0 || flags&ModifierFlagsAsync == 0 {
		t.Errorf("flags = %b, want export|async", flags)
	}
	if flags&ModifierFlagsStatic != 0 {
		t.Errorf("flags = %b, static should not be set", flags)
	}
}

func TestNestedNamespaceImpliesExport(t *testing.T) {
	inner := node(syntax.KindModuleDeclaration, 0, 10)
	inner.Flags |= NodeFlagsNestedNamespace
	if GetModifierFlags(inner)&ModifierFlagsExport == 0 {
		t.Error("dotted-namespace members are implicitly exported")
	}
}

func TestCanHaveModifiers(t *testing.T) {
	yes := []syntax.Kind{
		syntax.KindClassDeclaration, syntax.KindVariableStatement,
		syntax.KindParameter, syntax.KindMethodDeclaration,
		syntax.KindEnumDeclaration, syntax.KindExportAssignment,
	}
	no := []syntax.Kind{
		syntax.KindIdentifier, syntax.KindBinaryExpression,
		syntax.KindIfStatement, syntax.KindBlock, syntax.KindSourceFile,
	}
	for _, k := range yes {
		if !CanHaveModifiers(k) {
			t.Errorf("CanHaveModifiers(%v) = false, want true", k)
		}
	}
	for _, k := range no {
		if CanHaveModifiers(k) {
			t.Errorf("CanHaveModifiers(%v) = true, want false", k)
		}
	}
}

func TestGetTextOfNodeFromSourceText(t *testing.T) {
	text := "  /* lead */ foo.bar"
	n := node(syntax.KindPropertyAccessExpression, 0, len(text))
	if got := GetTextOfNodeFromSourceText(text, n); got != "foo.bar" {
		t.Errorf("got %q, want %q", got, "foo.bar")
	}
	missing := node(syntax.KindIdentifier, 5, 5)
	if got := GetTextOfNodeFromSourceText(text, missing); got != "" {
		t.Errorf("missing node yielded %q, want empty", got)
	}
}

func TestTagNamesAreEquivalent(t *testing.T) {
	propAccess := func(objName, propName string) *Node {
		return node(syntax.KindPropertyAccessExpression, 0, 0,
			ident(objName, 0), ident(propName, 0))
	}
	namespaced := func(ns, name string) *Node {
		return node(syntax.KindJsxNamespacedName, 0, 0,
			ident(ns, 0), ident(name, 0))
	}
	tests := []struct {
		name string
		lhs  *Node
		rhs  *Node
		want bool
	}{
		{"same identifier", ident("div", 0), ident("div", 10), true},
		{"different identifier", ident("div", 0), ident("span", 0), false},
		{"this", node(syntax.KindThisKeyword, 0, 4), node(syntax.KindThisKeyword, 9, 13), true},
		{"same property access", propAccess("a", "b"), propAccess("a", "b"), true},
		{"different property", propAccess("a", "b"), propAccess("a", "c"), false},
		{"same namespaced", namespaced("svg", "rect"), namespaced("svg", "rect"), true},
		{"different namespace", namespaced("svg", "rect"), namespaced("xml", "rect"), false},
		{"kind mismatch", ident("a", 0), propAccess("a", "b"), false},
		{"nil", nil, ident("a", 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagNamesAreEquivalent(tt.lhs, tt.rhs); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLeftHandSideExpressionKind(t *testing.T) {
	yes := []syntax.Kind{
		syntax.KindIdentifier, syntax.KindCallExpression,
		syntax.KindPropertyAccessExpression, syntax.KindThisKeyword,
		syntax.KindParenthesizedExpression, syntax.KindNonNullExpression,
	}
	no := []syntax.Kind{
		syntax.KindBinaryExpression, syntax.KindConditionalExpression,
		syntax.KindPrefixUnaryExpression, syntax.KindArrowFunction,
	}
	for _, k := range yes {
		if !IsLeftHandSideExpressionKind(k) {
			t.Errorf("IsLeftHandSideExpressionKind(%v) = false, want true", k)
		}
	}
	for _, k := range no {
		if IsLeftHandSideExpressionKind(k) {
			t.Errorf("IsLeftHandSideExpressionKind(%v) = true, want false", k)
		}
	}
}

func TestSkipTrivia(t *testing.T) {
	tests := []struct {
		text string
		pos  int
		want int
	}{
		{"  x", 0, 2},
		{"// c\nx", 0, 5},
		{"/* c */x", 0, 7},
		{"/* a */ // b\n  x", 0, 15},
		{"x", 0, 0},
		{"  ", 0, 2},
		{"/* unterminated", 0, 15},
	}
	for _, tt := range tests {
		if got := SkipTrivia(tt.text, tt.pos); got != tt.want {
			t.Errorf("SkipTrivia(%q, %d) = %d, want %d", tt.text, tt.pos, got, tt.want)
		}
	}
}

func TestGetLeadingCommentRanges(t *testing.T) {
	text := "// one\n/* two */\n/** doc */\nx"
	ranges := GetLeadingCommentRanges(text, 0)
	if len(ranges) != 3 {
		t.Fatalf("got %d ranges, want 3", len(ranges))
	}
	if ranges[0].Kind != syntax.KindSingleLineCommentTrivia || !ranges[0].HasTrailingNewLine {
		t.Errorf("range 0: %+v", ranges[0])
	}
	if ranges[1].Kind != syntax.KindMultiLineCommentTrivia || ranges[1].JSDoc {
		t.Errorf("range 1: %+v", ranges[1])
	}
	if !ranges[2].JSDoc {
		t.Errorf("range 2 should be JSDoc: %+v", ranges[2])
	}
}

func TestGetTrailingCommentRanges(t *testing.T) {
	text := "x // same line\n// next line"
	ranges := GetTrailingCommentRanges(text, 1)
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	if ranges[0].Pos != 2 || ranges[0].End != 14 {
		t.Errorf("range span %d..%d, want 2..14", ranges[0].Pos, ranges[0].End)
	}
}

func TestEmptyJSDocIsNotJSDoc(t *testing.T) {
	ranges := GetLeadingCommentRanges("/**/x", 0)
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	if ranges[0].JSDoc {
		t.Error("/**/ is not a JSDoc comment")
	}
}

func TestGetJSDocCommentRanges(t *testing.T) {
	text := "/** doc */\nfunction f() {}"
	decl := node(syntax.KindFunctionDeclaration, 0, len(text))
	ranges := GetJSDocCommentRanges(decl, text)
	if len(ranges) != 1 {
		t.Fatalf("got %d JSDoc ranges, want 1", len(ranges))
	}

	stmt := node(syntax.KindIfStatement, 0, len(text))
	if GetJSDocCommentRanges(stmt, text) != nil {
		t.Error("kinds that cannot own JSDoc should yield nil")
	}
}

func TestComputeLineStarts(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"", []int{0}},
		{"a\nb", []int{0, 2}},
		{"a\r\nb", []int{0, 3}},
		{"a\rb", []int{0, 2}},
		{"\n\n", []int{0, 1, 2}},
	}
	for _, tt := range tests {
		got := ComputeLineStarts(tt.text)
		if len(got) != len(tt.want) {
			t.Errorf("ComputeLineStarts(%q) = %v, want %v", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ComputeLineStarts(%q) = %v, want %v", tt.text, got, tt.want)
				break
			}
		}
	}
}

func TestLineAndCharacter(t *testing.T) {
	f := &SourceFile{Text: "ab\ncde\nf"}
	tests := []struct {
		pos, line, character int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{6, 1, 3},
		{7, 2, 0},
	}
	for _, tt := range tests {
		line, character := f.LineAndCharacter(tt.pos)
		if line != tt.line || character != tt.character {
			t.Errorf("LineAndCharacter(%d) = (%d, %d), want (%d, %d)",
				tt.pos, line, character, tt.line, tt.character)
		}
	}
}

func TestInspectOrder(t *testing.T) {
	leaf1 := ident("a", 0)
	leaf2 := ident("b", 4)
	root := node(syntax.KindBinaryExpression, 0, 5,
		leaf1, node(syntax.KindPlusToken, 2, 3), leaf2)
	var visited []*Node
	Inspect(root, func(n *Node) bool {
		if n != nil {
			visited = append(visited, n)
		}
		return true
	})
	if len(visited) != 4 {
		t.Fatalf("visited %d nodes, want 4", len(visited))
	}
	if visited[0] != root || visited[1] != leaf1 || visited[3] != leaf2 {
		t.Error("Inspect should visit parents before children, in child order")
	}
}

func TestInspectPrune(t *testing.T) {
	inner := ident("a", 0)
	middle := node(syntax.KindParenthesizedExpression, 0, 3, inner)
	root := node(syntax.KindExpressionStatement, 0, 4, middle)
	var count int
	Inspect(root, func(n *Node) bool {
		if n == nil {
			return false
		}
		count++
		return n.Kind != syntax.KindParenthesizedExpression
	})
	if count != 2 {
		t.Errorf("visited %d nodes, want 2 (subtree pruned)", count)
	}
}

func TestForEachChildShortCircuit(t *testing.T) {
	a, b, c := ident("a", 0), ident("b", 1), ident("c", 2)
	root := node(syntax.KindArrayLiteralExpression, 0, 3, a, b, c)
	var seen int
	hit := ForEachChild(root, func(n *Node) *Node {
		seen++
		if n == b {
			return n
		}
		return nil
	})
	if hit != b {
		t.Errorf("got %v, want the matched child", hit)
	}
	if seen != 2 {
		t.Errorf("visited %d children, want 2", seen)
	}
}

func TestContainsParseError(t *testing.T) {
	bad := ident("x", 3)
	bad.Flags |= NodeFlagsThisNodeHasError
	root := node(syntax.KindExpressionStatement, 0, 4,
		node(syntax.KindCallExpression, 0, 4, ident("f", 0), bad))
	if !ContainsParseError(root) {
		t.Error("error on a descendant should propagate to the root")
	}
	if root.Flags&NodeFlagsHasAggregatedChildData == 0 {
		t.Error("the aggregation bit should be cached after the first query")
	}
	// Cached answer stays stable on repeat queries.
	if !ContainsParseError(root) {
		t.Error("second query should return the cached result")
	}

	clean := node(syntax.KindExpressionStatement, 0, 1, ident("y", 0))
	if ContainsParseError(clean) {
		t.Error("a clean tree has no parse errors")
	}
	if clean.Flags&NodeFlagsHasAggregatedChildData == 0 {
		t.Error("negative answers are cached too")
	}
}

func TestGetExternalModuleIndicator(t *testing.T) {
	newFile := func(stmts ...*Node) *SourceFile {
		f := &SourceFile{Node: Node{Kind: syntax.KindSourceFile}}
		for _, s := range stmts {
			f.Node.AddChild(s)
		}
		return f
	}

	t.Run("export modifier", func(t *testing.T) {
		stmt := node(syntax.KindVariableStatement, 0, 10)
		stmt.AddModifier(node(syntax.KindExportKeyword, 0, 6))
		f := newFile(node(syntax.KindEmptyStatement, 0, 0), stmt)
		if got := GetExternalModuleIndicator(f); got != stmt {
			t.Errorf("got %v, want the exported statement", got)
		}
	})

	t.Run("import declaration", func(t *testing.T) {
		imp := node(syntax.KindImportDeclaration, 0, 20)
		f := newFile(imp)
		if got := GetExternalModuleIndicator(f); got != imp {
			t.Errorf("got %v, want the import declaration", got)
		}
	})

	t.Run("import equals needs require", func(t *testing.T) {
		plain := node(syntax.KindImportEqualsDeclaration, 0, 20,
			ident("a", 7), ident("b", 11))
		f := newFile(plain)
		if GetExternalModuleIndicator(f) != nil {
			t.Error("import a = b does not make the file a module")
		}

		ext := node(syntax.KindImportEqualsDeclaration, 0, 30,
			ident("a", 7),
			node(syntax.KindExternalModuleReference, 11, 28))
		f = newFile(ext)
		if GetExternalModuleIndicator(f) != ext {
			t.Error("import a = require(...) makes the file a module")
		}
	})

	t.Run("import meta fallback requires pre-flag", func(t *testing.T) {
		meta := node(syntax.KindMetaProperty, 10, 21,
			node(syntax.KindImportKeyword, 10, 16), ident("meta", 17))
		meta.Text = "meta"
		stmt := node(syntax.KindExpressionStatement, 10, 21, meta)

		f := newFile(stmt)
		if GetExternalModuleIndicator(f) != nil {
			t.Error("without the pre-flag the fallback walk must not run")
		}

		f = newFile(stmt)
		f.Node.Flags |= NodeFlagsPossiblyContainsImportMeta
		if got := GetExternalModuleIndicator(f); got != meta {
			t.Errorf("got %v, want the meta-property", got)
		}
	})

	t.Run("cached", func(t *testing.T) {
		f := newFile()
		if GetExternalModuleIndicator(f) != nil {
			t.Fatal("empty file is not a module")
		}
		// Mutating after the first query must not change the answer.
		imp := node(syntax.KindImportDeclaration, 0, 20)
		f.Node.AddChild(imp)
		if GetExternalModuleIndicator(f) != nil {
			t.Error("the computed indicator is cached")
		}
	})
}
