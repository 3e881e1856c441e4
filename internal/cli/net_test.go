package cli

import (
	"strings"
	"testing"

	"github.com/seamusw/cubesim"
)

func TestRenderNetPlainFallback(t *testing.T) {
	model := cubesim.Solved(3)
	if got := renderNet(model, 3, false); got != model.String() {
		t.Errorf("plain rendering should match the model's text net\ngot:\n%s\nwant:\n%s", got, model.String())
	}
}

func TestRenderNetColoredShape(t *testing.T) {
	// 3 U rows + 3 middle rows + 3 D rows.
	got := renderNet(cubesim.Solved(3), 3, true)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 9 {
		t.Errorf("colored net has %d lines; want 9", len(lines))
	}
}
