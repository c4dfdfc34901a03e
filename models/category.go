package models

type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type CategoriesResponse struct {
	Success         bool              `json:"success"`
	Categories      map[string]string `json:"categories"`
	TotalCategories int               `json:"total_categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []Category `json:"categories"`
	CurrentCategory string     `json:"current_category"`
}
