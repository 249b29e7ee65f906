// Package dispatcher binds the page actions to the backend endpoints. Every
// action reads at most one input element, runs one request asynchronously
// and renders the outcome, or a fixed error message, into its output
// element.
package dispatcher

import (
	"context"

	"deskclient/backend"
	"deskclient/queue"
	"deskclient/recording"
	"deskclient/view"
)

// Dispatcher owns the document, the recording controller and the runner the
// actions execute on.
type Dispatcher struct {
	backend  Backend
	doc      *view.Document
	runner   *queue.Runner
	rec      *recording.Machine
	rollback bool
	onState  func(recording.State)
}

// Option customises a Dispatcher.
type Option func(*Dispatcher)

// WithRecordingMachine uses m instead of a fresh Idle machine. The controls
// are rendered to match its current state.
func WithRecordingMachine(m *recording.Machine) Option {
	return func(d *Dispatcher) {
		d.rec = m
	}
}

// WithRollbackOnFailure reverts the optimistic state change and controls
// when a start or stop request fails. Off by default.
func WithRollbackOnFailure(enabled bool) Option {
	return func(d *Dispatcher) {
		d.rollback = enabled
	}
}

// WithStateObserver calls fn after every recording state change.
func WithStateObserver(fn func(recording.State)) Option {
	return func(d *Dispatcher) {
		d.onState = fn
	}
}

// New creates a Dispatcher rendering into doc. A nil runner gets a plain
// background Runner.
func New(b Backend, doc *view.Document, runner *queue.Runner, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		backend: b,
		doc:     doc,
		runner:  runner,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rec == nil {
		d.rec = recording.NewMachine(recording.Idle)
	}
	if d.runner == nil {
		d.runner = queue.NewRunner(context.Background(), nil)
	}
	RenderRecordingControls(d.doc, d.rec.State())
	return d
}

// Document returns the document actions render into.
func (d *Dispatcher) Document() *view.Document {
	return d.doc
}

// RecordingState returns the controller state.
func (d *Dispatcher) RecordingState() recording.State {
	return d.rec.State()
}

// Wait blocks until every action started so far has rendered.
func (d *Dispatcher) Wait() {
	d.runner.Wait()
}

// SummarizeDocument sends the pdf-question value to /pdf_summary.
func (d *Dispatcher) SummarizeDocument() *queue.Request {
	question := d.doc.Value(view.PDFQuestion)
	return d.runner.Enqueue(ActionPDFSummary, func(ctx context.Context) (any, error) {
		return FetchSummary(ctx, d.backend, question)
	}, func(res queue.RequestResult) {
		resp, _ := res.Value.(backend.SummaryResponse)
		logResult(res, resp.Error.String())
		RenderSummary(d.doc, resp, res.Error)
	})
}

// GenerateQuiz sends the quiz-input value to /quiz_generator.
func (d *Dispatcher) GenerateQuiz() *queue.Request {
	input := d.doc.Value(view.QuizInput)
	return d.runner.Enqueue(ActionQuizGenerator, func(ctx context.Context) (any, error) {
		return FetchQuiz(ctx, d.backend, input)
	}, func(res queue.RequestResult) {
		resp, _ := res.Value.(backend.QuizResponse)
		logResult(res, resp.Error.String())
		RenderQuiz(d.doc, resp, res.Error)
	})
}

// GenerateVisual sends the visual-query value to /visual_generator.
func (d *Dispatcher) GenerateVisual() *queue.Request {
	query := d.doc.Value(view.VisualQuery)
	return d.runner.Enqueue(ActionVisual, func(ctx context.Context) (any, error) {
		return FetchVisual(ctx, d.backend, query)
	}, func(res queue.RequestResult) {
		resp, _ := res.Value.(backend.VisualResponse)
		logResult(res, resp.Error.String())
		RenderVisual(d.doc, resp, res.Error)
	})
}

// FetchClassSummary asks /class_summary for the current class summary.
func (d *Dispatcher) FetchClassSummary() *queue.Request {
	return d.runner.Enqueue(ActionClassSummary, func(ctx context.Context) (any, error) {
		return FetchClassSummary(ctx, d.backend)
	}, func(res queue.RequestResult) {
		resp, _ := res.Value.(backend.ClassSummaryResponse)
		logResult(res, resp.Error.String())
		RenderClassSummary(d.doc, resp, res.Error)
	})
}

// StartRecording switches to Recording and updates the controls before the
// request is sent. While already recording it does nothing and returns a
// completed request.
func (d *Dispatcher) StartRecording() *queue.Request {
	if !d.rec.Start() {
		log.Debugf("Ignoring %s: already %s", ActionStartRecording, recording.Recording)
		return queue.Completed(ActionStartRecording)
	}
	RenderRecording(d.doc, recording.Recording)
	d.notifyState(recording.Recording)

	return d.runner.Enqueue(ActionStartRecording, func(ctx context.Context) (any, error) {
		return FetchStartRecording(ctx, d.backend)
	}, func(res queue.RequestResult) {
		logResult(res, "")
		if res.Error == nil {
			log.Infof("Recording started")
			return
		}
		d.doc.SetText(view.RecordingStatus, StatusStartError)
		if d.rollback && d.rec.Stop() {
			RenderRecordingControls(d.doc, recording.Idle)
			d.notifyState(recording.Idle)
		}
	})
}

// StopRecording switches to Idle and updates the controls before the
// request is sent. While idle it does nothing and returns a completed
// request.
func (d *Dispatcher) StopRecording() *queue.Request {
	if !d.rec.Stop() {
		log.Debugf("Ignoring %s: already %s", ActionStopRecording, recording.Idle)
		return queue.Completed(ActionStopRecording)
	}
	RenderRecording(d.doc, recording.Idle)
	d.notifyState(recording.Idle)

	return d.runner.Enqueue(ActionStopRecording, func(ctx context.Context) (any, error) {
		return FetchStopRecording(ctx, d.backend)
	}, func(res queue.RequestResult) {
		logResult(res, "")
		if res.Error == nil {
			log.Infof("Recording stopped")
			return
		}
		d.doc.SetText(view.RecordingStatus, StatusStopError)
		if d.rollback && d.rec.Start() {
			RenderRecordingControls(d.doc, recording.Recording)
			d.notifyState(recording.Recording)
		}
	})
}

func (d *Dispatcher) notifyState(s recording.State) {
	if d.onState != nil {
		d.onState(s)
	}
}
