package slides_test

import (
	"encoding/json"
	"strings"
	"testing"

	"aippt/slides"
)

const sampleSlide = `{
  "id": "tpl-1",
  "type": "cover",
  "background": {"type": "solid", "color": "#fff"},
  "elements": [
    {"type": "text", "id": "t1", "left": 10, "top": 20, "width": 300, "height": 50, "rotate": 0,
     "content": "<p><span style=\"font-size: 32px;\">Title</span></p>", "textType": "title",
     "defaultFontName": "Arial", "vertical": false},
    {"type": "shape", "id": "s1", "left": 10, "top": 100, "width": 40, "height": 40, "rotate": 0,
     "groupId": "g1", "path": "M 0 0 L 200 0", "viewBox": [200, 200],
     "text": {"content": "<p>01</p>", "type": "itemNumber", "align": "middle", "lineHeight": 1}},
    {"type": "text", "id": "t2", "left": 60, "top": 100, "width": 200, "height": 40, "rotate": 0,
     "groupId": "g1", "content": "<p>item</p>", "textType": "item"},
    {"type": "image", "id": "i1", "left": 400, "top": 0, "width": 200, "height": 100, "rotate": 0,
     "src": "a.png", "imageType": "pageFigure", "fixedRatio": true,
     "clip": {"range": [[0, 0], [100, 100]], "shape": "ellipse"}},
    {"type": "line", "id": "l1", "left": 0, "top": 0, "width": 2, "height": 0, "rotate": 0,
     "start": [0, 0], "end": [100, 0], "style": "solid"}
  ]
}`

func decodeSample(t *testing.T) *slides.Slide {
	t.Helper()
	var s slides.Slide
	if err := json.Unmarshal([]byte(sampleSlide), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return &s
}

func TestSlideDecode(t *testing.T) {
	s := decodeSample(t)
	if s.ID != "tpl-1" || s.Type != "cover" {
		t.Fatalf("unexpected slide header: %q %q", s.ID, s.Type)
	}
	if len(s.Elements) != 5 {
		t.Fatalf("got %d elements, want 5", len(s.Elements))
	}

	wantKinds := []slides.ElementType{slides.ElementText, slides.ElementShape, slides.ElementText, slides.ElementImage, "line"}
	for i, el := range s.Elements {
		if el.Kind() != wantKinds[i] {
			t.Errorf("element %d kind = %q, want %q", i, el.Kind(), wantKinds[i])
		}
	}
	if _, ok := s.Elements[4].(*slides.RawElement); !ok {
		t.Errorf("line element decoded as %T, want *RawElement", s.Elements[4])
	}
	img := s.Elements[3].(*slides.ImageElement)
	if img.Clip == nil || img.Clip.Shape != "ellipse" {
		t.Errorf("clip not decoded: %+v", img.Clip)
	}
}

func TestSlideRoundTripKeepsUnknownFields(t *testing.T) {
	s := decodeSample(t)
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("re-decode error = %v", err)
	}
	if _, ok := back["background"]; !ok {
		t.Error("slide background lost")
	}
	elements := back["elements"].([]any)
	text := elements[0].(map[string]any)
	if text["defaultFontName"] != "Arial" {
		t.Errorf("defaultFontName lost: %v", text)
	}
	if text["type"] != "text" {
		t.Errorf("type = %v, want text", text["type"])
	}
	shape := elements[1].(map[string]any)
	if _, ok := shape["path"]; !ok {
		t.Error("shape path lost")
	}
	if shape["text"].(map[string]any)["lineHeight"] != float64(1) {
		t.Error("shape text lineHeight lost")
	}
	line := elements[4].(map[string]any)
	if line["style"] != "solid" {
		t.Errorf("raw element changed: %v", line)
	}
}

func TestDecodeElementWithoutType(t *testing.T) {
	if _, err := slides.DecodeElement([]byte(`{"id":"x"}`)); err == nil {
		t.Fatal("expected error for element without type")
	}
}

func TestClassify(t *testing.T) {
	s := decodeSample(t)
	want := []slides.SlotRole{
		slides.SlotRoleTitle,
		slides.SlotRoleItemNumber,
		slides.SlotRoleItem,
		slides.SlotRolePageFigure,
		slides.SlotRoleNone,
	}
	for i, el := range s.Elements {
		if got := slides.Classify(el); got != want[i] {
			t.Errorf("Classify(element %d) = %s, want %s", i, got, want[i])
		}
	}

	counts := slides.CountRoles(s.Elements)
	if counts[slides.SlotRoleItem] != 1 || counts[slides.SlotRoleTitle] != 1 {
		t.Errorf("CountRoles() = %v", counts)
	}
}

func TestSlotRoleText(t *testing.T) {
	for _, name := range slides.SlotRoleNames() {
		r, err := slides.ParseSlotRole(name)
		if err != nil {
			t.Fatalf("ParseSlotRole(%q) error = %v", name, err)
		}
		if r.String() != name {
			t.Errorf("String() = %q, want %q", r.String(), name)
		}
	}
	if _, err := slides.ParseSlotRole("nonsense"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := decodeSample(t)
	img := s.Elements[3].(*slides.ImageElement)
	c := img.Clone().(*slides.ImageElement)
	c.Clip.Range[0][0] = 50
	c.Left = 999
	if img.Clip.Range[0][0] != 0 || img.Left != 400 {
		t.Error("clone shares state with original")
	}

	tbl := &slides.TableElement{Data: [][]slides.TableCell{{{ID: "a", Style: &slides.CellStyle{Bold: true}}}}}
	tc := tbl.Clone().(*slides.TableElement)
	tc.Data[0][0].Style.Bold = false
	if !tbl.Data[0][0].Style.Bold {
		t.Error("table clone shares cell style")
	}
}

func TestRemovalExpandsGroups(t *testing.T) {
	s := decodeSample(t)
	groups := slides.BuildGroupIndex(s.Elements)
	if got := len(groups.Members("g1")); got != 2 {
		t.Fatalf("group g1 has %d members, want 2", got)
	}

	rm := slides.NewRemoval(groups)
	rm.Add(s.Elements[2])
	kept := rm.Apply(s.Elements)
	if len(kept) != 3 {
		t.Fatalf("kept %d elements, want 3", len(kept))
	}
	for _, el := range kept {
		if el.Frame().GroupID == "g1" {
			t.Errorf("element %s of removed group survived", el.Frame().ID)
		}
	}

	replaced := &slides.ImageElement{Base: slides.Base{ID: "fresh", GroupID: "g1"}}
	if kept := rm.Apply([]slides.Element{replaced}); len(kept) != 0 {
		t.Error("new element of removed group survived")
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<p><span style=\"color:red\">Hello</span> <b>world</b></p>", "Hello world"},
		{"  plain  ", "plain"},
		{"<p></p>", ""},
		{"<p>a &amp; b</p>", "a & b"},
	}
	for _, tt := range tests {
		if got := slides.PlainText(tt.in); got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDerive(t *testing.T) {
	s := decodeSample(t)
	d := s.Derive(slides.NewID(), nil)
	if d.ID == s.ID || d.Type != s.Type || !d.IsEmpty() {
		t.Fatalf("unexpected derived slide %+v", d)
	}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"background"`) {
		t.Errorf("derived slide lost metadata: %s", data)
	}
}

func TestDump(t *testing.T) {
	out := slides.Dump([]*slides.Slide{decodeSample(t)})
	for _, want := range []string{"deck: 1 slide(s)", "role=title", `text: "Title"`, "meta: [background]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %q:\n%s", want, out)
		}
	}
}
