package markup

// Attr is a single named attribute of a Node.
type Attr struct {
	Name  string
	Value string
}

// Node is a generic markup element: a tag name, an ordered set of uniquely
// named attributes and an ordered sequence of child elements.
//
// Nodes are plain values with no parent links; a tree is owned by whoever
// built it.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
}

// New returns an empty node with the given name.
func New(name string) *Node {
	return &Node{Name: name}
}

// SetAttr sets the value of the named attribute. An existing attribute keeps
// its position; a new one is appended.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AppendChild names child and appends it to n's children.
func (n *Node) AppendChild(name string, child *Node) {
	child.Name = name
	n.Children = append(n.Children, child)
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given name in order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{Name: n.Name}
	if n.Attrs != nil {
		res.Attrs = make([]Attr, len(n.Attrs))
		copy(res.Attrs, n.Attrs)
	}
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Equal reports whether a and b are structurally identical, including the
// order of attributes and children.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
