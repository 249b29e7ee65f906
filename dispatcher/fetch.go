package dispatcher

import (
	"context"

	"deskclient/backend"
)

// Backend is the subset of *backend.Client the dispatcher needs.
type Backend interface {
	PostJSON(ctx context.Context, path string, payload, out any) error
	GetJSON(ctx context.Context, path string, out any) error
	Trigger(ctx context.Context, path string) ([]byte, error)
}

// FetchSummary posts the question to the PDF summary endpoint.
func FetchSummary(ctx context.Context, b Backend, question string) (backend.SummaryResponse, error) {
	var resp backend.SummaryResponse
	err := b.PostJSON(ctx, backend.PathPDFSummary, backend.SummaryRequest{Question: question}, &resp)
	return resp, err
}

// FetchQuiz posts the input to the quiz endpoint.
func FetchQuiz(ctx context.Context, b Backend, input string) (backend.QuizResponse, error) {
	var resp backend.QuizResponse
	err := b.PostJSON(ctx, backend.PathQuizGenerator, backend.QuizRequest{Input: input}, &resp)
	return resp, err
}

// FetchVisual posts the query to the visual endpoint.
func FetchVisual(ctx context.Context, b Backend, query string) (backend.VisualResponse, error) {
	var resp backend.VisualResponse
	err := b.PostJSON(ctx, backend.PathVisualGenerator, backend.VisualRequest{Query: query}, &resp)
	return resp, err
}

// FetchClassSummary gets the class summary.
func FetchClassSummary(ctx context.Context, b Backend) (backend.ClassSummaryResponse, error) {
	var resp backend.ClassSummaryResponse
	err := b.GetJSON(ctx, backend.PathClassSummary, &resp)
	return resp, err
}

// The recording calls only care about the status code; the returned body
// is for logging.

// FetchStartRecording asks the backend to start recording.
func FetchStartRecording(ctx context.Context, b Backend) ([]byte, error) {
	return b.Trigger(ctx, backend.PathStartRecording)
}

// FetchStopRecording asks the backend to stop recording.
func FetchStopRecording(ctx context.Context, b Backend) ([]byte, error) {
	return b.Trigger(ctx, backend.PathStopRecording)
}
