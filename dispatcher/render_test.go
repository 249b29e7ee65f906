package dispatcher

import (
	"errors"
	"testing"

	"deskclient/backend"
	"deskclient/recording"
	"deskclient/view"

	"github.com/stretchr/testify/assert"
)

func TestRenderVisualEscapesURL(t *testing.T) {
	doc := view.NewDocument()
	RenderVisual(doc, backend.VisualResponse{BestImageURL: `http://x/a.png" onerror="alert(1)`}, nil)

	el, _ := doc.Element(view.VisualResult)
	assert.NotContains(t, el.HTML, `" onerror="`)
	assert.Contains(t, el.HTML, `alt="Generated Image"`)
}

func TestRenderVisualReplacesPreviousContent(t *testing.T) {
	doc := view.NewDocument()
	RenderVisual(doc, backend.VisualResponse{BestImageURL: "http://x/cat.png"}, nil)
	RenderVisual(doc, backend.VisualResponse{}, errors.New("timeout"))

	el, _ := doc.Element(view.VisualResult)
	assert.Equal(t, MsgError, el.Text)
	assert.Empty(t, el.HTML)
}

func TestRenderTextPrefersErrorOverValue(t *testing.T) {
	doc := view.NewDocument()
	RenderQuiz(doc, backend.QuizResponse{Quiz: "Q1"}, errors.New("boom"))

	el, _ := doc.Element(view.QuizResult)
	assert.Equal(t, MsgError, el.Text)
}

func TestRenderRecording(t *testing.T) {
	doc := view.NewDocument()

	RenderRecording(doc, recording.Recording)
	start, _ := doc.Element(view.StartRecording)
	stop, _ := doc.Element(view.StopRecording)
	status, _ := doc.Element(view.RecordingStatus)
	assert.True(t, start.Disabled)
	assert.False(t, stop.Disabled)
	assert.Equal(t, StatusStarted, status.Text)

	RenderRecording(doc, recording.Idle)
	start, _ = doc.Element(view.StartRecording)
	stop, _ = doc.Element(view.StopRecording)
	status, _ = doc.Element(view.RecordingStatus)
	assert.False(t, start.Disabled)
	assert.True(t, stop.Disabled)
	assert.Equal(t, StatusStopped, status.Text)
}
