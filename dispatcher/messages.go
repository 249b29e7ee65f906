package dispatcher

// Action names, used for logging and in-flight tracking.
const (
	ActionPDFSummary     = "pdf_summary"
	ActionQuizGenerator  = "quiz_generator"
	ActionVisual         = "visual_generator"
	ActionClassSummary   = "class_summary"
	ActionStartRecording = "start_recording"
	ActionStopRecording  = "stop_recording"
)

// Rendered strings.
const (
	MsgError          = "An error occurred."
	MsgNoSummary      = "No summary available."
	MsgNoQuiz         = "No quiz generated."
	MsgNoImage        = "No suitable image found."
	MsgNoClassSummary = "No class summary available."

	StatusStarted    = "Recording status: Started"
	StatusStopped    = "Recording status: Stopped"
	StatusStartError = "Recording status: Error starting recording"
	StatusStopError  = "Recording status: Error stopping recording"
)
