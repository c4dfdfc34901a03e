package handlers

import (
	"net/http"
	"strconv"

	"triviaapi/db"
	"triviaapi/models"
	"triviaapi/utils"

	"github.com/go-chi/chi/v5"
)

func categoryMap(categories []models.Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strconv.Itoa(c.ID)] = c.Type
	}
	return m
}

// GetCategories returns every category as an id-to-type mapping.
func GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := db.GetAllCategories(r.Context())
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.CategoriesResponse{
		Success:         true,
		Categories:      categoryMap(categories),
		TotalCategories: len(categories),
	})
}

// GetQuestionsByCategory lists a category's questions, paginated, with the
// matched category type as current_category.
func GetQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	// Missing category and failed lookup both read as 404 here.
	category, err := db.GetCategoryByID(r.Context(), categoryID)
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	selection, err := db.QuestionsByCategory(r.Context(), category.ID)
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	categories, err := db.GetAllCategories(r.Context())
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	// total_questions is the unfiltered store count, not the category's.
	total, err := db.CountQuestions(r.Context())
	if err != nil {
		utils.SendNotFound(w)
		return
	}

	utils.SendJSON(w, http.StatusOK, models.CategoryQuestionsResponse{
		Success:         true,
		Questions:       utils.Paginate(selection, utils.PageParam(r)),
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: category.Type,
	})
}
