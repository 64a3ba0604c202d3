package ast

import "encoding/json"

type jsonNode struct {
	Kind      string      `json:"kind"`
	Pos       int         `json:"pos"`
	End       int         `json:"end"`
	Text      string      `json:"text,omitempty"`
	Error     bool        `json:"error,omitempty"`
	Modifiers []*jsonNode `json:"modifiers,omitempty"`
	Children  []*jsonNode `json:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind:  n.Kind.String(),
		Pos:   n.Pos,
		End:   n.End,
		Text:  n.Text,
		Error: n.Flags&NodeFlagsThisNodeHasError != 0,
	}
	for _, mod := range n.Modifiers {
		jn.Modifiers = append(jn.Modifiers, mod.toJSON())
	}
	for _, child := range n.Children {
		jn.Children = append(jn.Children, child.toJSON())
	}
	return jn
}
