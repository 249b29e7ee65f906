package backend

// Endpoint paths, relative to the backend base URL.
const (
	PathPDFSummary      = "/pdf_summary"
	PathQuizGenerator   = "/quiz_generator"
	PathVisualGenerator = "/visual_generator"
	PathClassSummary    = "/class_summary"
	PathStartRecording  = "/start_recording"
	PathStopRecording   = "/stop_recording"
)

type SummaryRequest struct {
	Question string `json:"question"`
}

type SummaryResponse struct {
	Response Text `json:"response"`
	Error    Text `json:"error,omitempty"`
}

type QuizRequest struct {
	Input string `json:"input"`
}

type QuizResponse struct {
	Quiz  Text `json:"quiz"`
	Error Text `json:"error,omitempty"`
}

type VisualRequest struct {
	Query string `json:"query"`
}

type VisualResponse struct {
	BestImageURL Text `json:"best_image_url"`
	Error        Text `json:"error,omitempty"`
}

type ClassSummaryResponse struct {
	ClassSummary Text `json:"class_summary"`
	Error        Text `json:"error,omitempty"`
}
