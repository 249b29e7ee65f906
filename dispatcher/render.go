package dispatcher

import (
	"deskclient/backend"
	"deskclient/recording"
	"deskclient/view"
)

// The Render functions apply an outcome to the document. They never touch
// the network, and an empty field renders the same as a missing one.

// RenderSummary writes the summary, its fallback, or the error message.
func RenderSummary(doc *view.Document, resp backend.SummaryResponse, err error) {
	renderText(doc, view.PDFSummaryResult, resp.Response.String(), MsgNoSummary, err)
}

// RenderQuiz writes the quiz, its fallback, or the error message.
func RenderQuiz(doc *view.Document, resp backend.QuizResponse, err error) {
	renderText(doc, view.QuizResult, resp.Quiz.String(), MsgNoQuiz, err)
}

// RenderClassSummary writes the class summary, its fallback, or the error
// message.
func RenderClassSummary(doc *view.Document, resp backend.ClassSummaryResponse, err error) {
	renderText(doc, view.ClassSummaryResult, resp.ClassSummary.String(), MsgNoClassSummary, err)
}

// RenderVisual writes an image element for the best image URL, the
// no-image text, or the error message.
func RenderVisual(doc *view.Document, resp backend.VisualResponse, err error) {
	if err != nil {
		doc.SetText(view.VisualResult, MsgError)
		return
	}
	if resp.BestImageURL == "" {
		doc.SetText(view.VisualResult, MsgNoImage)
		return
	}
	markup, err := view.ImageHTML(resp.BestImageURL.String())
	if err != nil {
		log.Errorf("Error: %v", err)
		doc.SetText(view.VisualResult, MsgError)
		return
	}
	doc.SetHTML(view.VisualResult, markup)
}

// RenderRecording sets both controls and the status line for state s.
func RenderRecording(doc *view.Document, s recording.State) {
	RenderRecordingControls(doc, s)
	if s == recording.Recording {
		doc.SetText(view.RecordingStatus, StatusStarted)
	} else {
		doc.SetText(view.RecordingStatus, StatusStopped)
	}
}

// RenderRecordingControls sets only the controls for state s, leaving the
// status line alone.
func RenderRecordingControls(doc *view.Document, s recording.State) {
	recordingNow := s == recording.Recording
	doc.SetDisabled(view.StartRecording, recordingNow)
	doc.SetDisabled(view.StopRecording, !recordingNow)
}

func renderText(doc *view.Document, id, value, fallback string, err error) {
	if err != nil {
		doc.SetText(id, MsgError)
		return
	}
	if value == "" {
		value = fallback
	}
	doc.SetText(id, value)
}
