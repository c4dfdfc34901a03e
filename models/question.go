package models

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionRequest is the body of POST /questions. A non-empty Search turns
// the request into a search instead of a create.
type QuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
	Search     string `json:"search"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuizCategory struct {
	ID int `json:"id"`
}

// QuizRequest selects the next quiz question. A category id of 0 means all
// categories.
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []Question        `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[string]string `json:"categories"`
	CurrentCategory *string           `json:"current_category"`
}

type DeleteQuestionResponse struct {
	Success        bool       `json:"success"`
	Deleted        int        `json:"deleted"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type CreateQuestionResponse struct {
	Success        bool       `json:"success"`
	Created        int        `json:"created"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type SearchQuestionsResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type SearchResultsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []Category `json:"categories"`
	CurrentCategory *string    `json:"current_category"`
}

type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
