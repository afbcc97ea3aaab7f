package generate_test

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"aippt/fitter"
	"aippt/generate"
	"aippt/library"
	"aippt/slides"
	"aippt/table"
)

const coverTemplate = `{"id":"cover-1","type":"cover","background":{"type":"solid","color":"#ffffff"},"elements":[
 {"type":"text","id":"c-title","left":100,"top":150,"width":800,"height":80,"rotate":0,"textType":"title","content":"<p style='font-size: 40px;'>Title</p>"},
 {"type":"text","id":"c-text","left":100,"top":260,"width":800,"height":60,"rotate":0,"textType":"content","content":"<p>Text</p>"},
 {"type":"image","id":"c-img","left":600,"top":0,"width":400,"height":300,"rotate":0,"src":"old.png","imageType":"pageFigure","fixedRatio":true},
 {"type":"line","id":"c-line","left":100,"top":240,"width":800,"height":0,"start":[0,0],"end":[800,0],"color":"#000"}
]}`

const contents2Template = `{"id":"contents-2","type":"contents","elements":[
 {"type":"text","id":"n1","left":50,"top":100,"width":60,"height":40,"rotate":0,"groupId":"g1","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"i1","left":120,"top":100,"width":600,"height":40,"rotate":0,"groupId":"g1","textType":"item","content":"<p>Item</p>"},
 {"type":"text","id":"n2","left":50,"top":200,"width":60,"height":40,"rotate":0,"groupId":"g2","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"i2","left":120,"top":200,"width":600,"height":40,"rotate":0,"groupId":"g2","textType":"item","content":"<p>Item</p>"}
]}`

// elements are listed out of reading order on purpose
const contents4Template = `{"id":"contents-4","type":"contents","elements":[
 {"type":"text","id":"n4","left":50,"top":400,"width":60,"height":40,"rotate":0,"groupId":"g4","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"i4","left":120,"top":400,"width":600,"height":40,"rotate":0,"groupId":"g4","textType":"item","content":"<p>Item</p>"},
 {"type":"text","id":"n1","left":50,"top":100,"width":60,"height":40,"rotate":0,"groupId":"g1","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"i1","left":120,"top":100,"width":600,"height":40,"rotate":0,"groupId":"g1","textType":"item","content":"<p>Item</p>"},
 {"type":"text","id":"n3","left":50,"top":300,"width":60,"height":40,"rotate":0,"groupId":"g3","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"i3","left":120,"top":300,"width":600,"height":40,"rotate":0,"groupId":"g3","textType":"item","content":"<p>Item</p>"},
 {"type":"text","id":"n2","left":50,"top":200,"width":60,"height":40,"rotate":0,"groupId":"g2","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"i2","left":120,"top":200,"width":600,"height":40,"rotate":0,"groupId":"g2","textType":"item","content":"<p>Item</p>"}
]}`

const transition1Template = `{"id":"transition-1","type":"transition","elements":[
 {"type":"shape","id":"t1-num","left":100,"top":100,"width":120,"height":120,"rotate":0,"path":"M 0 0 L 200 0 L 200 200 Z","text":{"content":"<p>00</p>","type":"partNumber","defaultFontName":"Microsoft Yahei","defaultColor":"#333333","align":"middle"}},
 {"type":"text","id":"t1-title","left":260,"top":100,"width":600,"height":80,"rotate":0,"textType":"title","content":"<p>Part</p>"},
 {"type":"text","id":"t1-text","left":260,"top":200,"width":600,"height":80,"rotate":0,"textType":"content","content":"<p>Text</p>"}
]}`

const transition2Template = `{"id":"transition-2","type":"transition","elements":[
 {"type":"text","id":"t2-num","left":100,"top":300,"width":120,"height":120,"rotate":0,"textType":"partNumber","content":"<p>00</p>"},
 {"type":"text","id":"t2-title","left":260,"top":300,"width":600,"height":80,"rotate":0,"textType":"title","content":"<p>Part</p>"}
]}`

const content2Template = `{"id":"content-2","type":"content","elements":[
 {"type":"text","id":"k-title","left":100,"top":20,"width":800,"height":60,"rotate":0,"textType":"title","content":"<p>Title</p>"},
 {"type":"text","id":"a-num","left":100,"top":110,"width":60,"height":30,"rotate":0,"groupId":"ga","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"a-title","left":100,"top":150,"width":400,"height":40,"rotate":0,"groupId":"ga","textType":"itemTitle","content":"<p>Item title</p>"},
 {"type":"text","id":"a-text","left":100,"top":200,"width":400,"height":100,"rotate":0,"groupId":"ga","textType":"item","content":"<p>Item text</p>"},
 {"type":"text","id":"b-num","left":550,"top":110,"width":60,"height":30,"rotate":0,"groupId":"gb","textType":"itemNumber","content":"<p>00</p>"},
 {"type":"text","id":"b-title","left":550,"top":150,"width":400,"height":40,"rotate":0,"groupId":"gb","textType":"itemTitle","content":"<p>Item title</p>"},
 {"type":"text","id":"b-text","left":550,"top":200,"width":400,"height":100,"rotate":0,"groupId":"gb","textType":"item","content":"<p>Item text</p>"},
 {"type":"image","id":"k-deco","left":800,"top":400,"width":200,"height":100,"rotate":0,"src":"deco.png","imageType":"pageFigure","fixedRatio":true}
]}`

const content2FiguresTemplate = `{"id":"content-2f","type":"content","elements":[
 {"type":"text","id":"f-title","left":100,"top":20,"width":800,"height":60,"rotate":0,"textType":"title","content":"<p>Title</p>"},
 {"type":"text","id":"fa-text","left":100,"top":100,"width":400,"height":80,"rotate":0,"groupId":"fa","textType":"item","content":"<p>Item text</p>"},
 {"type":"text","id":"fb-text","left":550,"top":100,"width":400,"height":80,"rotate":0,"groupId":"fb","textType":"item","content":"<p>Item text</p>"},
 {"type":"image","id":"fa-img","left":100,"top":300,"width":300,"height":200,"rotate":0,"src":"a.png","imageType":"itemFigure","fixedRatio":true,"clip":{"range":[[10,0],[90,100]],"shape":"ellipse"}},
 {"type":"image","id":"fb-img","left":550,"top":300,"width":300,"height":200,"rotate":0,"src":"b.png","imageType":"itemFigure","fixedRatio":true}
]}`

const content1Template = `{"id":"content-1","type":"content","elements":[
 {"type":"text","id":"m-title","left":100,"top":20,"width":800,"height":60,"rotate":0,"textType":"title","content":"<p>Title</p>"},
 {"type":"text","id":"m-text","left":100,"top":100,"width":800,"height":300,"rotate":0,"textType":"content","content":"<p>Text</p>"}
]}`

const endTemplate = `{"id":"end-1","type":"end","elements":[
 {"type":"image","id":"e-bg","left":0,"top":0,"width":1000,"height":562.5,"rotate":0,"src":"bg.png","imageType":"background","fixedRatio":false},
 {"type":"text","id":"e-text","left":300,"top":250,"width":400,"height":60,"rotate":0,"content":"<p>Thank you</p>"}
]}`

// contents8Template lays out two columns of four numbered items. Labels run
// down the left column first, so they disagree with reading order.
func contents8Template() string {
	var els []string
	for i := range 8 {
		left, top := 50, 100+(i%4)*100
		if i >= 4 {
			left = 550
		}
		els = append(els,
			fmt.Sprintf(`{"type":"text","id":"n%d","left":%d,"top":%d,"width":60,"height":40,"rotate":0,"groupId":"g%d","textType":"itemNumber","content":"<p>%02d</p>"}`,
				i+1, left, top, i+1, i+1),
			fmt.Sprintf(`{"type":"text","id":"i%d","left":%d,"top":%d,"width":350,"height":40,"rotate":0,"groupId":"g%d","textType":"item","content":"<p>Item</p>"}`,
				i+1, left+70, top, i+1))
	}
	return `{"id":"contents-8","type":"contents","elements":[` + strings.Join(els, ",") + `]}`
}

// templates wraps template slides into library document.
func templates(list ...string) string {
	return `{"slides":[` + strings.Join(list, ",") + `]}`
}

func newLibrary(t *testing.T, list ...string) *library.Library {
	t.Helper()
	lib, err := library.Load(strings.NewReader(templates(list...)), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unable to load templates: %v", err)
	}
	return lib
}

func newGenerator(t *testing.T, lib *library.Library) *generate.Generator {
	t.Helper()
	log := zaptest.NewLogger(t)
	return generate.New(lib,
		fitter.New(fitter.EstimateMeasurer{}, 0, log),
		table.NewBuilder(nil, log),
		generate.DefaultOptions(),
		log)
}

// find returns element with template id.
func find(t *testing.T, s *slides.Slide, id string) slides.Element {
	t.Helper()
	for _, el := range s.Elements {
		if el.Frame().ID == id {
			return el
		}
	}
	t.Fatalf("element %q not found on slide %s", id, s.ID)
	return nil
}

func has(s *slides.Slide, id string) bool {
	for _, el := range s.Elements {
		if el.Frame().ID == id {
			return true
		}
	}
	return false
}

func text(t *testing.T, s *slides.Slide, id string) string {
	t.Helper()
	markup, ok := slides.Markup(find(t, s, id))
	if !ok {
		t.Fatalf("element %q carries no text", id)
	}
	return slides.PlainText(markup)
}

func images(s *slides.Slide) []*slides.ImageElement {
	var out []*slides.ImageElement
	for _, el := range s.Elements {
		if img, ok := el.(*slides.ImageElement); ok {
			out = append(out, img)
		}
	}
	return out
}

func tables(s *slides.Slide) []*slides.TableElement {
	var out []*slides.TableElement
	for _, el := range s.Elements {
		if tbl, ok := el.(*slides.TableElement); ok {
			out = append(out, tbl)
		}
	}
	return out
}
