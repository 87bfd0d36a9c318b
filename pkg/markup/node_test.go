package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	root := New("testSection")
	root.SetAttr("global", "true")

	elem := &Node{}
	elem.SetAttr("size", "13")
	root.AppendChild("testElement", elem)

	urls := &Node{}
	for _, name := range []string{"url1", "url2"} {
		u := &Node{}
		u.SetAttr("name", name)
		urls.AppendChild("url", u)
	}
	root.AppendChild("urls", urls)
	return root
}

func TestNode_SetAttrKeepsPosition(t *testing.T) {
	n := New("a")
	n.SetAttr("x", "1")
	n.SetAttr("y", "2")
	n.SetAttr("x", "3")

	assert.Equal(t, []Attr{{Name: "x", Value: "3"}, {Name: "y", Value: "2"}}, n.Attrs)

	v, ok := n.Attr("y")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = n.Attr("z")
	assert.False(t, ok)
}

func TestNode_ChildLookup(t *testing.T) {
	root := sampleTree()

	require.NotNil(t, root.Child("urls"))
	assert.Nil(t, root.Child("missing"))
	assert.Len(t, root.Child("urls").ChildrenNamed("url"), 2)
	assert.Empty(t, root.ChildrenNamed("url"))
}

func TestNode_CloneIsDeep(t *testing.T) {
	root := sampleTree()
	cp := root.Clone()

	require.True(t, Equal(root, cp))

	cp.Child("urls").Children[0].SetAttr("name", "changed")
	cp.SetAttr("global", "false")

	assert.False(t, Equal(root, cp))
	v, _ := root.Child("urls").Children[0].Attr("name")
	assert.Equal(t, "url1", v)

	var nilNode *Node
	assert.Nil(t, nilNode.Clone())
}

func TestEqual(t *testing.T) {
	a := New("a")
	a.SetAttr("x", "1")
	a.SetAttr("y", "2")

	b := New("a")
	b.SetAttr("y", "2")
	b.SetAttr("x", "1")

	assert.False(t, Equal(a, b), "attribute order is significant")
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(a, a.Clone()))
}
