// Package view is an in-process stand-in for the page: a set of elements
// addressed by ID that actions read inputs from and render results into.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"sync"
)

// Element IDs the dispatcher reads from or writes to.
const (
	PDFQuestion        = "pdf-question"
	PDFSummaryResult   = "pdf-summary-result"
	QuizInput          = "quiz-input"
	QuizResult         = "quiz-result"
	VisualQuery        = "visual-query"
	VisualResult       = "visual-result"
	ClassSummaryResult = "class-summary-result"
	StartRecording     = "start-recording"
	StopRecording      = "stop-recording"
	RecordingStatus    = "recording-status"
)

// KnownIDs lists every element a Document is created with.
var KnownIDs = []string{
	PDFQuestion,
	PDFSummaryResult,
	QuizInput,
	QuizResult,
	VisualQuery,
	VisualResult,
	ClassSummaryResult,
	StartRecording,
	StopRecording,
	RecordingStatus,
}

// Element is a snapshot of one element. Only one of Text and HTML is set.
type Element struct {
	ID       string `json:"id"`
	Value    string `json:"value,omitempty"`
	Text     string `json:"text,omitempty"`
	HTML     string `json:"html,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Document holds the elements. It is safe for concurrent use.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
	onChange func(Element)
}

// NewDocument returns a Document with every known element registered, the
// start control enabled and the stop control disabled.
func NewDocument() *Document {
	d := &Document{elements: make(map[string]*Element, len(KnownIDs))}
	for _, id := range KnownIDs {
		d.elements[id] = &Element{ID: id}
	}
	d.elements[StopRecording].Disabled = true
	return d
}

// OnChange registers fn to be called with a copy of every element after it
// changes. fn runs on the goroutine that made the change.
func (d *Document) OnChange(fn func(Element)) {
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

func (d *Document) update(id string, fn func(*Element)) {
	d.mu.Lock()
	el, ok := d.elements[id]
	if !ok {
		el = &Element{ID: id}
		d.elements[id] = el
	}
	fn(el)
	snapshot := *el
	notify := d.onChange
	d.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

// Value returns the input value of id, "" when unset.
func (d *Document) Value(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if el, ok := d.elements[id]; ok {
		return el.Value
	}
	return ""
}

func (d *Document) SetValue(id, v string) {
	d.update(id, func(el *Element) { el.Value = v })
}

// SetText replaces the element content with plain text.
func (d *Document) SetText(id, s string) {
	d.update(id, func(el *Element) {
		el.Text = s
		el.HTML = ""
	})
}

// SetHTML replaces the element content with markup.
func (d *Document) SetHTML(id, s string) {
	d.update(id, func(el *Element) {
		el.HTML = s
		el.Text = ""
	})
}

func (d *Document) SetDisabled(id string, disabled bool) {
	d.update(id, func(el *Element) { el.Disabled = disabled })
}

// Element returns a copy of id and whether it exists.
func (d *Document) Element(id string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	el, ok := d.elements[id]
	if !ok {
		return Element{}, false
	}
	return *el, true
}

// Snapshot returns copies of all elements sorted by ID.
func (d *Document) Snapshot() []Element {
	d.mu.RLock()
	out := make([]Element, 0, len(d.elements))
	for _, el := range d.elements {
		out = append(out, *el)
	}
	d.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var imageTpl = template.Must(template.New("img").Parse(
	`<img src="{{.}}" alt="Generated Image" style="max-width: 100%;">`))

// ImageHTML renders an image element for src with the URL attribute-escaped.
func ImageHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := imageTpl.Execute(&buf, src); err != nil {
		return "", fmt.Errorf("rendering image for %q: %w", src, err)
	}
	return buf.String(), nil
}
