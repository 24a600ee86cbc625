package document

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFlatNode(t *testing.T) {
	doc, err := Parse("node 1 2 key=3\n")
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)

	n := doc.Nodes[0]
	require.Equal(t, "node", n.Name)
	require.Len(t, n.Arguments(), 2)
	prop := n.Property("key")
	require.NotNil(t, prop)
	num, ok := prop.Value.AsNumber()
	require.True(t, ok)
	i, err := num.Uint64()
	require.NoError(t, err)
	require.EqualValues(t, 3, i)
}

func TestArgumentIsAbsentSafe(t *testing.T) {
	doc, err := Parse("node 1 2\n")
	require.NoError(t, err)
	n := doc.Nodes[0]

	first := n.Argument(0)
	require.NotNil(t, first)
	num, _ := first.Value.AsNumber()
	i, _ := num.Uint64()
	require.EqualValues(t, 1, i)

	require.Nil(t, n.Argument(2))
	require.Nil(t, n.Argument(-1))
}

func TestParseNestedChildren(t *testing.T) {
	doc, err := Parse("parent {\n  child1\n  child2 1\n}\nsibling\n")
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 2)

	parent := doc.Nodes[0]
	require.True(t, parent.HasChildren)
	require.NotNil(t, parent.Children)
	require.Len(t, parent.Children.Nodes, 2)
	require.Equal(t, "child1", parent.Children.Nodes[0].Name)
	require.False(t, parent.Children.Nodes[0].HasChildren)

	sibling := doc.Nodes[1]
	require.Equal(t, "sibling", sibling.Name)
}

func TestParseDeeplyNestedChildren(t *testing.T) {
	doc, err := Parse("a {\n  b {\n    c\n  }\n}\n")
	require.NoError(t, err)
	a := doc.Nodes[0]
	require.True(t, a.HasChildren)
	b := a.Children.Nodes[0]
	require.True(t, b.HasChildren)
	require.Equal(t, "c", b.Children.Nodes[0].Name)
	require.False(t, b.Children.Nodes[0].HasChildren)
}

func TestParseSlashdashFiltered(t *testing.T) {
	doc, err := Parse("/-dropped 1\nkept\n")
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)
	require.Equal(t, "kept", doc.Nodes[0].Name)
}

func TestNormalizeDropsEmptyChildren(t *testing.T) {
	doc, err := Parse("node {\n}\n")
	require.NoError(t, err)
	require.True(t, doc.Nodes[0].HasChildren)
	doc.Normalize()
	require.False(t, doc.Nodes[0].HasChildren)
	require.Nil(t, doc.Nodes[0].Children)
}

func TestNormalizeKeepsRightmostKeyedEntry(t *testing.T) {
	doc, err := Parse("node key=1 key=2 3\n")
	require.NoError(t, err)
	doc.Normalize()
	n := doc.Nodes[0]
	require.Len(t, n.Entries, 2)
	prop := n.Property("key")
	num, _ := prop.Value.AsNumber()
	i, _ := num.Uint64()
	require.EqualValues(t, 2, i)
	require.Len(t, n.Arguments(), 1)
}

func TestGetAndGetFirst(t *testing.T) {
	doc, err := Parse("a 1\nb 2\na 3\n")
	require.NoError(t, err)
	all := doc.Get("a")
	require.Len(t, all, 2)
	first := doc.GetFirst("a")
	require.NotNil(t, first)
	num, _ := first.Arguments()[0].Value.AsNumber()
	i, _ := num.Uint64()
	require.EqualValues(t, 1, i)
}

func TestWriteToRoundTrips(t *testing.T) {
	doc, err := Parse("parent key=1 {\n  child \"x\"\n}\n")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, doc.WriteTo(&b))

	out, err := Parse(b.String())
	require.NoError(t, err)
	require.Equal(t, "parent", out.Nodes[0].Name)
	require.Equal(t, "child", out.Nodes[0].Children.Nodes[0].Name)
}

func TestQuotedAndRawStrings(t *testing.T) {
	doc, err := Parse("node \"line\\nbreak\" #\"raw\\nliteral\"#\n")
	require.NoError(t, err)
	args := doc.Nodes[0].Arguments()
	require.Len(t, args, 2)

	s0, _ := args[0].Value.AsString()
	require.Equal(t, "line\nbreak", s0)

	s1, _ := args[1].Value.AsString()
	require.Equal(t, `raw\nliteral`, s1)
}

func TestMultilineStringDedent(t *testing.T) {
	doc, err := Parse("node \"\"\"\n    first\n    second\n    \"\"\"\n")
	require.NoError(t, err)
	s, _ := doc.Nodes[0].Arguments()[0].Value.AsString()
	require.Equal(t, "first\nsecond", s)
}

func TestParseEquivalentSyntaxProducesEqualDOM(t *testing.T) {
	a, err := Parse("node key=1 \"plain\" {\n  child\n}\n")
	require.NoError(t, err)
	b, err := Parse("node   key=1   #\"plain\"#   {\n  child\n}\n")
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("documents with equivalent syntax differ (-a +b):\n%s", diff)
	}
}

func TestFloatOverflowBecomesInf(t *testing.T) {
	doc, err := Parse("node 1e999\n")
	require.NoError(t, err)
	num, ok := doc.Nodes[0].Arguments()[0].Value.AsNumber()
	require.True(t, ok)
	f, err := num.Float64()
	require.NoError(t, err)
	require.True(t, f > 0)
	require.Equal(t, "#inf", num.String())
}
