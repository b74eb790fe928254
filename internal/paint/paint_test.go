package paint

import (
	"testing"

	"toybrowser/internal/css"
	"toybrowser/internal/htmlparse"
	"toybrowser/internal/layout"
	"toybrowser/internal/style"
)

func buildPaint(t *testing.T, htmlSrc, cssSrc string) []DisplayItem {
	t.Helper()
	win := htmlparse.Parse(htmlSrc)
	sheet := css.Parse(htmlparse.ExtractStyleText(win.Document) + cssSrc)
	obj := layout.NewBuilder(sheet).Build(win.Document)
	layout.ComputeSize(obj, layout.ContentAreaWidth)
	layout.ComputePosition(obj, layout.Point{X: layout.WindowPadding, Y: layout.WindowPadding + layout.ToolbarHeight})
	return Paint(obj, nil)
}

func TestBlockEmitsOneRect(t *testing.T) {
	items := buildPaint(t, "<html><body><p>hi</p></body></html>", "")
	rects := 0
	for _, it := range items {
		if it.Kind == KindRect {
			rects++
		}
	}
	if rects != 2 { // body, p
		t.Fatalf("rect count = %d, want 2 (body + p)", rects)
	}
}

func TestInlineEmitsNoRectOfItsOwn(t *testing.T) {
	items := buildPaint(t, "<html><body><a>link</a></body></html>", "")
	for _, it := range items {
		if it.Kind == KindRect && it.Style.Display == style.Inline {
			t.Fatalf("inline element should not paint its own rect: %+v", it)
		}
	}
}

func TestTextWrapsIntoMultipleDisplayItems(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen"
	items := buildPaint(t, "<html><body><p>"+long+"</p></body></html>", "")
	var lines []DisplayItem
	for _, it := range items {
		if it.Kind == KindText {
			lines = append(lines, it)
		}
	}
	if len(lines) < 2 {
		t.Fatalf("expected text to wrap into multiple lines, got %d", len(lines))
	}
	for i, l := range lines {
		wantY := layout.WindowPadding + layout.ToolbarHeight + i*layout.CharHeightWithPadding
		if l.Point.Y != wantY {
			t.Fatalf("line %d y = %d, want %d", i, l.Point.Y, wantY)
		}
	}
}

func TestWrapDoesNotSplitWordsWhenASpaceIsAvailable(t *testing.T) {
	for _, line := range splitText("aaaa bbbb cccc dddd eeee ffff gggg hhhh iiii jjjj", 10) {
		if len(line) > 0 && line[len(line)-1] == ' ' {
			t.Fatalf("line retained trailing space: %q", line)
		}
	}
}

func TestDisplayNoneEmitsNoDisplayItems(t *testing.T) {
	items := buildPaint(t, `<html><head><style>p { display: none; }</style></head><body><p>hi</p></body></html>`, "")
	for _, it := range items {
		if it.Kind == KindText {
			t.Fatalf("display:none subtree should not paint any text, got %+v", it)
		}
	}
}
