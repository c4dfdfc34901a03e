package utils

import (
	"net/http"
	"strconv"

	"triviaapi/models"
)

const QuestionsPerPage = 10

// PageParam reads the 1-based "page" query parameter, defaulting to 1.
func PageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the page-th window of ten questions. Pages at or below
// zero behave like page 1; pages past the end yield an empty slice. The
// result is never nil.
func Paginate(questions []models.Question, page int) []models.Question {
	if page < 1 {
		page = 1
	}

	// Comparing against the last page keeps the offset arithmetic below
	// from overflowing for arbitrarily large page values.
	lastPage := (len(questions) + QuestionsPerPage - 1) / QuestionsPerPage
	if page > lastPage {
		return []models.Question{}
	}

	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
