package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// structural equality, back-references excluded
func treeDiff(a, b *Node) string {
	return cmp.Diff(a, b, cmpopts.IgnoreFields(Node{}, "Parent"))
}

func TestConstructors(t *testing.T) {
	txt := Text("Hello")
	if txt.Kind != TextKind || txt.Content != "Hello" {
		t.Errorf("bad text node %+v", txt)
	}
	if txt.Start != 0 || txt.End != 5 {
		t.Errorf("got span %d..%d want 0..5", txt.Start, txt.End)
	}
	txt2 := TextAt("Hello", 3, 8)
	if txt2.Start != 3 || txt2.End != 8 {
		t.Errorf("got span %d..%d want 3..8", txt2.Start, txt2.End)
	}

	el := ElemAt("red", 0, 12, txt)
	if el.Kind != ElementKind || el.Tag != "red" {
		t.Errorf("bad element node %+v", el)
	}
	if len(el.Children) != 1 || el.Children[0] != txt {
		t.Error("child not attached by constructor")
	}
	if txt.Parent != el {
		t.Error("child back-reference not set by constructor")
	}

	doc := Doc(el)
	if doc.Kind != DocumentKind || doc.Parent != nil {
		t.Errorf("bad document node %+v", doc)
	}
	if el.Parent != doc {
		t.Error("element back-reference not set by constructor")
	}
}

func TestAppendIdentity(t *testing.T) {
	p := Elem("bold")
	c := Text("x")
	p.Append(c)
	if len(p.Children) != 1 || p.Children[0] != c {
		t.Error("appended instance not found at inserted position")
	}
	if c.Parent != p {
		t.Error("appended instance has wrong parent")
	}
}

func TestAppendDetachesFromPreviousParent(t *testing.T) {
	a := Elem("red")
	b := Elem("blue")
	c := Text("x")
	a.Append(c)
	b.Append(c)
	if len(a.Children) != 0 {
		t.Error("child still present in previous container")
	}
	if len(b.Children) != 1 || b.Children[0] != c || c.Parent != b {
		t.Error("child not attached to new container")
	}
}

func checkChildren(t *testing.T, p *Node, want ...string) {
	t.Helper()
	got := []string{}
	for _, c := range p.Children {
		got = append(got, c.Content)
		if c.Parent != p {
			t.Errorf("child %q has wrong back-reference", c.Content)
		}
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("children (-want +got):\n%s", d)
	}
}

func TestAppendMovesWithinParent(t *testing.T) {
	a, b := Text("a"), Text("b")
	p := Elem("red", a, b)
	p.Append(a)
	checkChildren(t, p, "b", "a")
	p.Append(a)
	checkChildren(t, p, "b", "a")
}

func TestInsertMovesWithinParent(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	p := Elem("red", a, b, c)
	p.Insert(0, c)
	checkChildren(t, p, "c", "a", "b")
	// index interpreted after the detach
	p.Insert(2, c)
	checkChildren(t, p, "a", "b", "c")
}

func TestReplaceWithSibling(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	p := Elem("red", a, b, c)
	// earlier sibling replacing a later one
	p.Replace(c, a)
	checkChildren(t, p, "b", "a")
	if c.Parent != nil {
		t.Error("replaced child still attached")
	}

	a, b, c = Text("a"), Text("b"), Text("c")
	p = Elem("red", a, b, c)
	// first sibling replacing the middle one
	p.Replace(b, a)
	checkChildren(t, p, "a", "c")
	if b.Parent != nil {
		t.Error("replaced child still attached")
	}

	// replacing a node with itself: no-op
	p.Replace(a, a)
	checkChildren(t, p, "a", "c")
	if a.Parent != p {
		t.Error("self-replace detached the node")
	}
}

func TestAppendToLeafPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("append to text node did not panic")
		}
	}()
	Text("x").Append(Text("y"))
}

func TestInsert(t *testing.T) {
	p := Elem("red", Text("a"), Text("c"))
	b := Text("b")
	p.Insert(1, b)
	got := []string{}
	for _, c := range p.Children {
		got = append(got, c.Content)
	}
	want := []string{"a", "b", "c"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("insert order (-want +got):\n%s", d)
	}
	// out of range clamps
	z := Text("z")
	p.Insert(99, z)
	if p.Children[len(p.Children)-1] != z {
		t.Error("insert past end did not append")
	}
}

func TestRemove(t *testing.T) {
	p := Elem("red")
	c := Text("x")
	p.Append(c)
	c.Remove()
	if len(p.Children) != 0 {
		t.Error("child still present after remove")
	}
	if c.Parent != nil {
		t.Error("back-reference not cleared by remove")
	}
	// detached: no-op, no panic
	c.Remove()
	// present in parent's children but parent points elsewhere: no-op
	q := Elem("blue")
	c.Parent = q
	c.Remove()
	if c.Parent != q {
		t.Error("remove of absent child should be a no-op")
	}
	c.Parent = nil
}

func TestReplace(t *testing.T) {
	p := Elem("red", Text("a"), Text("b"), Text("c"))
	oldChild := p.Children[1]
	newChild := Text("B")
	p.Replace(oldChild, newChild)
	if p.Children[1] != newChild {
		t.Error("replacement not in place")
	}
	if newChild.Parent != p || oldChild.Parent != nil {
		t.Error("back-references wrong after replace")
	}
	if len(p.Children) != 3 {
		t.Errorf("got %d children want 3", len(p.Children))
	}
	// absent old child: no-op
	stranger := Text("zz")
	sub := Text("w")
	p.Replace(stranger, sub)
	if len(p.Children) != 3 || sub.Parent != nil {
		t.Error("replace of absent child should be a no-op")
	}
}

func TestClone(t *testing.T) {
	doc := Doc(
		ElemAt("red", 0, 18,
			TextAt("Hello ", 5, 11),
			Elem("bold", Text("World")),
			Text("!"),
		),
	)
	cl := doc.Clone()
	if cl == doc {
		t.Fatal("clone has same identity")
	}
	if d := treeDiff(doc, cl); d != "" {
		t.Errorf("clone not structurally equal (-orig +clone):\n%s", d)
	}
	if cl.Parent != nil {
		t.Error("clone should be detached")
	}
	if cl.Children[0].Parent != cl {
		t.Error("clone's children parented elsewhere")
	}
	// mutating the clone leaves the original alone
	cl.Children[0].Append(Text("?"))
	if len(doc.Children[0].Children) != 3 {
		t.Error("mutating clone affected original")
	}

	// cloning an attached node detaches the copy only
	red := doc.Children[0]
	redClone := red.Clone()
	if redClone.Parent != nil {
		t.Error("clone of attached node should be detached")
	}
	if red.Parent != doc {
		t.Error("cloning detached the original")
	}
}

func TestRootAndAncestors(t *testing.T) {
	leaf := Text("x")
	bold := Elem("bold", leaf)
	red := Elem("red", bold)
	doc := Doc(red)

	root, err := leaf.Root()
	if err != nil {
		t.Fatal(err)
	}
	if root != doc {
		t.Error("wrong root")
	}

	anc := leaf.Ancestors()
	want := []*Node{bold, red, doc}
	if len(anc) != len(want) {
		t.Fatalf("got %d ancestors want %d", len(anc), len(want))
	}
	for i := range want {
		if anc[i] != want[i] {
			t.Errorf("ancestor %d: got %s want %s", i, anc[i].Kind, want[i].Kind)
		}
	}
	if len(doc.Ancestors()) != 0 {
		t.Error("root should have no ancestors")
	}

	for _, y := range Flatten(doc) {
		if y.Depth() != len(y.Ancestors()) {
			t.Errorf("%s: depth %d != %d ancestors", y.Path(), y.Depth(), len(y.Ancestors()))
		}
	}
	if doc.Depth() != 0 {
		t.Error("root depth should be 0")
	}
}

func TestRootStructureError(t *testing.T) {
	detached := Elem("red", Text("x"))
	_, err := detached.Children[0].Root()
	if err == nil {
		t.Fatal("expected structure error")
	}
	if !errors.Is(err, ErrStructure) {
		t.Errorf("error %v does not unwrap to ErrStructure", err)
	}
	var se *StructureError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a StructureError", err)
	}
	if se.Node != detached {
		t.Error("structure error should carry the bad terminal")
	}

	doc := Doc(Elem("red"))
	if _, err := doc.Root(); err != nil {
		t.Errorf("root of document: %v", err)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %s want %s", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("comment")); err == nil {
		t.Error("unknown kind text should not unmarshal")
	}
	if DocumentKind.IsLeaf() || ElementKind.IsLeaf() || !TextKind.IsLeaf() {
		t.Error("IsLeaf misclassifies")
	}
}
