package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"triviaapi/db"
	"triviaapi/models"
	"triviaapi/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// GetQuestions lists all questions ordered by id, paginated ten per page.
// A page past the end of the data is a 404.
func GetQuestions(w http.ResponseWriter, r *http.Request) {
	selection, err := db.ListQuestions(r.Context())
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	current := utils.Paginate(selection, utils.PageParam(r))
	if len(current) == 0 {
		utils.SendNotFound(w)
		return
	}

	categories, err := db.GetAllCategories(r.Context())
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.QuestionListResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(selection),
		Categories:      categoryMap(categories),
		CurrentCategory: nil,
	})
}

// DeleteQuestion removes a question by id and returns the refreshed listing.
func DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	if _, err := db.GetQuestionByID(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.SendNotFound(w)
		} else {
			utils.SendUnprocessable(w)
		}
		return
	}

	if err := db.DeleteQuestion(r.Context(), id); err != nil {
		utils.SendUnprocessable(w)
		return
	}

	selection, err := db.ListQuestions(r.Context())
	if err != nil {
		utils.SendUnprocessable(w)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      utils.Paginate(selection, utils.PageParam(r)),
		TotalQuestions: len(selection),
	})
}

// CreateOrSearchQuestions dispatches POST /questions on the shape of the
// body: a non-empty "search" field performs a search, anything else creates
// a question. Kept as one route for wire compatibility.
func CreateOrSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendBadRequest(w)
		return
	}

	if req.Search != "" {
		searchQuestions(w, r, req.Search)
		return
	}
	createQuestion(w, r, req)
}

func searchQuestions(w http.ResponseWriter, r *http.Request, term string) {
	matches, err := db.SearchQuestions(r.Context(), term)
	if err != nil {
		utils.SendUnprocessable(w)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.SearchQuestionsResponse{
		Success:        true,
		Questions:      utils.Paginate(matches, utils.PageParam(r)),
		TotalQuestions: len(matches),
	})
}

func createQuestion(w http.ResponseWriter, r *http.Request, req models.QuestionRequest) {
	if req.Question == "" || req.Answer == "" || req.Difficulty < 1 {
		utils.SendBadRequest(w)
		return
	}

	// The referenced category must exist; silent orphaning is not allowed.
	if _, err := db.GetCategoryByID(r.Context(), req.Category); err != nil {
		utils.SendBadRequest(w)
		return
	}

	id, err := db.InsertQuestion(r.Context(), models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		utils.SendUnprocessable(w)
		return
	}

	selection, err := db.ListQuestions(r.Context())
	if err != nil {
		utils.SendUnprocessable(w)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.CreateQuestionResponse{
		Success:        true,
		Created:        id,
		Questions:      utils.Paginate(selection, utils.PageParam(r)),
		TotalQuestions: len(selection),
	})
}

// SearchQuestions is the dedicated search route. An absent or empty term is
// a 404; matches are returned unpaginated.
func SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SearchTerm == "" {
		utils.SendNotFound(w)
		return
	}

	matches, err := db.SearchQuestions(r.Context(), req.SearchTerm)
	if err != nil {
		utils.SendUnprocessable(w)
		return
	}

	categories, err := db.GetAllCategories(r.Context())
	if err != nil {
		utils.SendUnprocessable(w)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.SearchResultsResponse{
		Success:         true,
		Questions:       matches,
		TotalQuestions:  len(matches),
		Categories:      categories,
		CurrentCategory: nil,
	})
}
