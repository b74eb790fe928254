package style

import (
	"testing"

	"toybrowser/internal/css"
	"toybrowser/internal/dom"
)

func TestDefaultDisplayByTagKind(t *testing.T) {
	sheet := css.Parse("")
	p := dom.NewElement("p")
	cs := Default(Cascade(sheet, p), p, nil)
	if cs.Display != Block {
		t.Fatalf("p display = %v, want Block", cs.Display)
	}

	a := dom.NewElement("a")
	cs = Default(Cascade(sheet, a), a, nil)
	if cs.Display != Inline {
		t.Fatalf("a display = %v, want Inline", cs.Display)
	}
	if cs.TextDecoration != Underline {
		t.Fatalf("a text-decoration = %v, want Underline", cs.TextDecoration)
	}
}

func TestHeadingFontSizes(t *testing.T) {
	sheet := css.Parse("")
	h1 := dom.NewElement("h1")
	cs := Default(Cascade(sheet, h1), h1, nil)
	if cs.FontSize != XXLarge {
		t.Fatalf("h1 font-size = %v, want XXLarge", cs.FontSize)
	}
	h2 := dom.NewElement("h2")
	cs = Default(Cascade(sheet, h2), h2, nil)
	if cs.FontSize != XLarge {
		t.Fatalf("h2 font-size = %v, want XLarge", cs.FontSize)
	}
}

func TestCascadeDisplayNone(t *testing.T) {
	sheet := css.Parse("body { display: none; }")
	body := dom.NewElement("body")
	cs := Default(Cascade(sheet, body), body, nil)
	if cs.Display != None {
		t.Fatalf("display = %v, want None", cs.Display)
	}
}

func TestClassSelectorMatch(t *testing.T) {
	sheet := css.Parse(".hidden { display: none; }")
	a := dom.NewElement("a")
	a.SetAttr("class", "hidden")
	cs := Default(Cascade(sheet, a), a, nil)
	if cs.Display != None {
		t.Fatalf("display = %v, want None", cs.Display)
	}
}

func TestLaterDeclarationWinsNoSpecificity(t *testing.T) {
	sheet := css.Parse("p { color: red; } p { color: blue; }")
	p := dom.NewElement("p")
	cs := Default(Cascade(sheet, p), p, nil)
	if cs.ForegroundColor != (Color{0, 0, 0xff}) {
		t.Fatalf("color = %+v, want blue (later rule wins)", cs.ForegroundColor)
	}
}

func TestColorInheritsFromParent(t *testing.T) {
	sheet := css.Parse("body { color: red; }")
	body := dom.NewElement("body")
	parentStyle := Default(Cascade(sheet, body), body, nil)

	p := dom.NewElement("p")
	cs := Default(Cascade(sheet, p), p, parentStyle)
	if cs.ForegroundColor != (Color{0xff, 0, 0}) {
		t.Fatalf("color = %+v, want inherited red", cs.ForegroundColor)
	}
}
