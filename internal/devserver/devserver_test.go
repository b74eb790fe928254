package devserver

import (
	"strings"
	"testing"

	"toybrowser/internal/layout"
	"toybrowser/internal/paint"
	"toybrowser/internal/style"
)

func TestRenderSVGEmitsRectAndText(t *testing.T) {
	cs := &style.ComputedStyle{BackgroundColor: style.White, ForegroundColor: style.Black}
	items := []paint.DisplayItem{
		{Kind: paint.KindRect, Point: layout.Point{X: 1, Y: 2}, Size: layout.Size{W: 10, H: 20}, Style: cs},
		{Kind: paint.KindText, Point: layout.Point{X: 3, Y: 4}, Style: cs, Text: "hi <there>"},
	}
	svg := RenderSVG(items)
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not a well-formed svg document: %s", svg)
	}
	if !strings.Contains(svg, `<rect x="1" y="2" width="10" height="20" fill="#ffffff"/>`) {
		t.Fatalf("missing expected rect: %s", svg)
	}
	if !strings.Contains(svg, "hi &lt;there&gt;") {
		t.Fatalf("text was not escaped: %s", svg)
	}
}

func TestRenderSVGEmptyList(t *testing.T) {
	svg := RenderSVG(nil)
	if svg != `<svg xmlns="http://www.w3.org/2000/svg"></svg>` {
		t.Fatalf("got %q", svg)
	}
}
