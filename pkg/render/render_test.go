package render

import (
	"strings"
	"testing"

	"github.com/askern/polycipher/pkg/cipher"
	"github.com/askern/polycipher/pkg/geometry"
)

func TestToDOTEmptyPipeline(t *testing.T) {
	dot := ToDOT(cipher.NewPipeline(), Options{})

	// An empty pipeline is just plaintext flowing straight to ciphertext.
	if !strings.Contains(dot, `"plaintext" -> "ciphertext";`) {
		t.Errorf("ToDOT() missing passthrough edge:\n%s", dot)
	}
	if strings.Contains(dot, "node1") {
		t.Errorf("ToDOT() should have no transform nodes:\n%s", dot)
	}
}

func TestToDOTChain(t *testing.T) {
	p := cipher.NewPipeline()
	p.AddNode(cipher.NewShift(3))
	p.AddNode(cipher.NewReverse())

	dot := ToDOT(p, Options{})

	for _, want := range []string{
		"rankdir=LR;",
		`"plaintext" -> "node1";`,
		`"node1" -> "node2";`,
		`"node2" -> "ciphertext";`,
		`"node1" [label="shift"];`,
		`"node2" [label="reverse"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	p := cipher.NewPipeline()
	p.AddNode(cipher.NewShift(3))
	p.AddNode(cipher.NewPolygon([]geometry.Point{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 0, Y: 400}}))

	dot := ToDOT(p, Options{Detailed: true})

	for _, want := range []string{
		`"node1" [label="Shift letters forward by 3"];`,
		`"node2" [label="Polygon (3 sides, convex): shift 3 then multiply 17"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}
