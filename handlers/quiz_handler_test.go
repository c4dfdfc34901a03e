package handlers

import (
	"testing"

	"triviaapi/models"
)

func TestExcludePrevious(t *testing.T) {
	questions := []models.Question{
		{ID: 1, Category: 1},
		{ID: 2, Category: 1},
		{ID: 3, Category: 2},
		{ID: 4, Category: 2},
	}

	candidates := excludePrevious(questions, []int{2, 4})
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	for _, q := range candidates {
		if q.ID == 2 || q.ID == 4 {
			t.Errorf("question %d should have been excluded", q.ID)
		}
	}
}

func TestExcludePreviousEmptyList(t *testing.T) {
	questions := []models.Question{{ID: 1}, {ID: 2}}

	candidates := excludePrevious(questions, nil)
	if len(candidates) != 2 {
		t.Fatalf("expected all questions back, got %d", len(candidates))
	}
}

func TestExcludePreviousExhaustion(t *testing.T) {
	questions := []models.Question{{ID: 7}, {ID: 8}}

	candidates := excludePrevious(questions, []int{7, 8, 9})
	if candidates == nil {
		t.Fatal("expected a non-nil slice")
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(candidates))
	}
}
