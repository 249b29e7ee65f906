package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	snap := d.Snapshot()
	require.Len(t, snap, len(KnownIDs))
	for i := 1; i < len(snap); i++ {
		assert.Less(t, snap[i-1].ID, snap[i].ID)
	}

	start, ok := d.Element(StartRecording)
	require.True(t, ok)
	assert.False(t, start.Disabled)
	stop, _ := d.Element(StopRecording)
	assert.True(t, stop.Disabled)

	_, ok = d.Element("missing")
	assert.False(t, ok)
	assert.Empty(t, d.Value("missing"))
}

func TestTextAndHTMLReplaceEachOther(t *testing.T) {
	d := NewDocument()
	d.SetHTML(VisualResult, `<img src="a.png">`)
	d.SetText(VisualResult, "No suitable image found.")

	el, _ := d.Element(VisualResult)
	assert.Equal(t, "No suitable image found.", el.Text)
	assert.Empty(t, el.HTML)

	d.SetHTML(VisualResult, `<img src="b.png">`)
	el, _ = d.Element(VisualResult)
	assert.Empty(t, el.Text)
	assert.Equal(t, `<img src="b.png">`, el.HTML)
}

func TestOnChange(t *testing.T) {
	d := NewDocument()
	var changes []Element
	d.OnChange(func(el Element) { changes = append(changes, el) })

	d.SetValue(QuizInput, "fractions")
	d.SetDisabled(StartRecording, true)

	require.Len(t, changes, 2)
	assert.Equal(t, Element{ID: QuizInput, Value: "fractions"}, changes[0])
	assert.True(t, changes[1].Disabled)
	assert.Equal(t, "fractions", d.Value(QuizInput))
}

func TestImageHTML(t *testing.T) {
	got, err := ImageHTML("http://x/cat.png")
	require.NoError(t, err)
	assert.Equal(t, `<img src="http://x/cat.png" alt="Generated Image" style="max-width: 100%;">`, got)

	got, err = ImageHTML("javascript:alert(1)")
	require.NoError(t, err)
	assert.NotContains(t, got, "javascript:")
}
