package ast

// Inspect traverses the tree in depth-first order: it starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each non-nil modifier and child of node, followed by a
// call of f(nil).
func Inspect(node *Node, f func(*Node) bool) {
	if f(node) {
		for _, mod := range node.Modifiers {
			Inspect(mod, f)
		}
		for _, child := range node.Children {
			Inspect(child, f)
		}
		f(nil)
	}
}

// ForEachChild calls f for each immediate modifier and child of node,
// stopping early and returning the first non-nil result of f.
func ForEachChild(node *Node, f func(*Node) *Node) *Node {
	for _, mod := range node.Modifiers {
		if result := f(mod); result != nil {
			return result
		}
	}
	for _, child := range node.Children {
		if result := f(child); result != nil {
			return result
		}
	}
	return nil
}

// GetSourceFileOfNode walks parent links to the root and returns it as a
// SourceFile, or nil when the node is detached.
func GetSourceFileOfNode(node *Node) *Node {
	for node != nil && node.Parent != nil {
		node = node.Parent
	}
	return node
}
