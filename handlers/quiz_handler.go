package handlers

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"

	"triviaapi/db"
	"triviaapi/models"
	"triviaapi/utils"
)

// excludePrevious drops every question whose id appears in previous. The
// storage query already excludes previous ids for a specific category, but
// the all-categories pool arrives unfiltered.
func excludePrevious(questions []models.Question, previous []int) []models.Question {
	seen := make(map[int]bool, len(previous))
	for _, id := range previous {
		seen[id] = true
	}

	candidates := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if !seen[q.ID] {
			candidates = append(candidates, q)
		}
	}
	return candidates
}

// GetQuiz returns one random question that has not been shown yet, filtered
// to the requested category unless the category id is 0. A null question
// signals that the quiz is complete.
func GetQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuizCategory == nil {
		utils.SendBadRequest(w)
		return
	}

	pool, err := db.QuizCandidates(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		utils.SendUnprocessable(w)
		return
	}

	candidates := excludePrevious(pool, req.PreviousQuestions)
	if len(candidates) == 0 {
		utils.SendJSON(w, http.StatusOK, models.QuizResponse{Success: true, Question: nil})
		return
	}

	question := candidates[rand.IntN(len(candidates))]
	utils.SendJSON(w, http.StatusOK, models.QuizResponse{Success: true, Question: &question})
}
