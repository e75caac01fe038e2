package syntax

import (
	"strings"
	"testing"

	"github.com/cybertec-postgresql/oraql/internal/token"
)

// buildSimple builds Root(Block(Ident "foo", Whitespace " ", KBegin "BEGIN"))
// over the source "foo BEGIN".
func buildSimple(src string) *Tree {
	b := NewBuilder(src)
	b.Start(token.Root)
	b.Start(token.Block)
	b.Token(token.Ident, "foo", 0)
	b.Trivia(token.Whitespace, " ", 3)
	b.Token(token.KBegin, "BEGIN", 4)
	b.Finish() // Block
	b.Finish() // Root
	return b.Tree()
}

func TestBuilder_Losslessness(t *testing.T) {
	src := "foo BEGIN"
	tree := buildSimple(src)

	var leaves []string
	tree.Root().Walk(func(n Node) {
		if n.IsLeaf() {
			leaves = append(leaves, n.Text())
		}
	})
	if got := strings.Join(leaves, ""); got != src {
		t.Errorf("leaf concatenation = %q, want %q", got, src)
	}
}

func TestBuilder_SpanMonotonicity(t *testing.T) {
	tree := buildSimple("foo BEGIN")
	root := tree.Root()
	rStart, rEnd := root.Span()
	if rStart != 0 || rEnd != 9 {
		t.Errorf("root span = [%d,%d), want [0,9)", rStart, rEnd)
	}

	block := root.Children()[0]
	bStart, bEnd := block.Span()
	if bStart != rStart || bEnd != rEnd {
		t.Errorf("block span = [%d,%d), want root span [%d,%d)", bStart, bEnd, rStart, rEnd)
	}

	children := block.Children()
	prevEnd := bStart
	for _, c := range children {
		cs, ce := c.Span()
		if cs != prevEnd {
			t.Errorf("child span does not start where previous child ended: got %d, want %d", cs, prevEnd)
		}
		prevEnd = ce
	}
	if prevEnd != bEnd {
		t.Errorf("last child end %d != block end %d", prevEnd, bEnd)
	}
}

func TestNode_NonTriviaSkipsWhitespace(t *testing.T) {
	tree := buildSimple("foo BEGIN")
	block := tree.Root().Children()[0]
	nt := block.NonTrivia()
	if len(nt) != 2 {
		t.Fatalf("NonTrivia() len = %d, want 2", len(nt))
	}
	if nt[0].Kind() != token.Ident || nt[1].Kind() != token.KBegin {
		t.Errorf("NonTrivia kinds = %v, %v", nt[0].Kind(), nt[1].Kind())
	}
}

func TestNode_FirstOfKind(t *testing.T) {
	tree := buildSimple("foo BEGIN")
	block := tree.Root().Children()[0]
	got, ok := block.FirstOfKind(token.KBegin)
	if !ok {
		t.Fatal("FirstOfKind(KBegin) not found")
	}
	if got.Text() != "BEGIN" {
		t.Errorf("Text() = %q, want %q", got.Text(), "BEGIN")
	}
	if _, ok := block.FirstOfKind(token.KEnd); ok {
		t.Error("FirstOfKind(KEnd) unexpectedly found")
	}
}
