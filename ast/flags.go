package ast

import "github.com/dhamidi/yomi/syntax"

// ContainsParseError reports whether node or any of its descendants
// carries a parse error. The answer is computed lazily on first query by
// walking children, then cached: the aggregation pass sets both the
// result bit and NodeFlagsHasAggregatedChildData, so repeat queries are
// O(1). Recomputation is idempotent, which makes a racing double-write
// harmless when a tree is shared after construction.
func ContainsParseError(node *Node) bool {
	aggregateChildData(node)
	return node.Flags&NodeFlagsThisNodeOrAnySubNodesHasError != 0
}

func aggregateChildData(node *Node) {
	if node.Flags&NodeFlagsHasAggregatedChildData != 0 {
		return
	}
	thisNodeOrAnySubNodesHasError := node.Flags&NodeFlagsThisNodeHasError != 0
	if !thisNodeOrAnySubNodesHasError {
		hit := ForEachChild(node, func(child *Node) *Node {
			if ContainsParseError(child) {
				return child
			}
			return nil
		})
		thisNodeOrAnySubNodesHasError = hit != nil
	}
	if thisNodeOrAnySubNodesHasError {
		node.Flags |= NodeFlagsThisNodeOrAnySubNodesHasError
	}
	node.Flags |= NodeFlagsHasAggregatedChildData
}

// GetExternalModuleIndicator returns the first node proving the file is
// a module: a top-level statement with an export modifier, an import or
// export declaration, an `import x = require(...)`, or an export
// assignment. When no statement qualifies the whole tree is searched for
// an `import.meta` meta-property, but only if the pre-flag set during
// scanning says the text may contain one. The result (including its
// absence) is cached; re-running detection on the same tree always
// returns the same answer.
func GetExternalModuleIndicator(file *SourceFile) *Node {
	if file.externalModuleIndicatorComputed {
		return file.externalModuleIndicator
	}
	file.externalModuleIndicator = findExternalModuleIndicator(file)
	file.externalModuleIndicatorComputed = true
	return file.externalModuleIndicator
}

func findExternalModuleIndicator(file *SourceFile) *Node {
	for _, stmt := range file.Statements() {
		if isAnExternalModuleIndicatorNode(stmt) {
			return stmt
		}
	}
	if file.Flags&NodeFlagsPossiblyContainsImportMeta != 0 {
		return findImportMeta(&file.Node)
	}
	return nil
}

func isAnExternalModuleIndicatorNode(node *Node) bool {
	if GetModifierFlags(node)&ModifierFlagsExport != 0 {
		return true
	}
	switch node.Kind {
	case syntax.KindImportDeclaration, syntax.KindExportAssignment, syntax.KindExportDeclaration:
		return true
	case syntax.KindImportEqualsDeclaration:
		return node.FirstChildOfKind(syntax.KindExternalModuleReference) != nil
	}
	return false
}

func findImportMeta(root *Node) *Node {
	var found *Node
	Inspect(root, func(n *Node) bool {
		if n == nil || found != nil {
			return false
		}
		if n.Kind == syntax.KindMetaProperty && len(n.Children) > 0 &&
			n.Children[0].Kind == syntax.KindImportKeyword && n.Text == "meta" {
			found = n
			return false
		}
		return true
	})
	return found
}
