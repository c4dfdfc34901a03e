package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"triviaapi/models"
)

func makeQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{ID: i + 1, Question: "q", Answer: "a", Category: 1, Difficulty: 1}
	}
	return questions
}

func TestPaginateFirstPage(t *testing.T) {
	questions := makeQuestions(19)

	page := Paginate(questions, 1)
	if len(page) != QuestionsPerPage {
		t.Fatalf("expected %d questions, got %d", QuestionsPerPage, len(page))
	}
	if page[0].ID != 1 || page[9].ID != 10 {
		t.Errorf("expected ids 1..10, got %d..%d", page[0].ID, page[9].ID)
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	questions := makeQuestions(19)

	page := Paginate(questions, 2)
	if len(page) != 9 {
		t.Fatalf("expected 9 questions on the last page, got %d", len(page))
	}
	if page[0].ID != 11 || page[8].ID != 19 {
		t.Errorf("expected ids 11..19, got %d..%d", page[0].ID, page[8].ID)
	}
}

func TestPaginateBeyondEndIsEmpty(t *testing.T) {
	page := Paginate(makeQuestions(19), 1000)
	if page == nil {
		t.Fatal("expected a non-nil slice")
	}
	if len(page) != 0 {
		t.Fatalf("expected an empty slice, got %d questions", len(page))
	}
}

func TestPaginateHugePageDoesNotPanic(t *testing.T) {
	questions := makeQuestions(19)

	for _, page := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt/QuestionsPerPage + 1} {
		got := Paginate(questions, page)
		if got == nil {
			t.Fatalf("page %d: expected a non-nil slice", page)
		}
		if len(got) != 0 {
			t.Errorf("page %d: expected an empty slice, got %d questions", page, len(got))
		}
	}
}

func TestPaginateNonPositivePageActsAsFirst(t *testing.T) {
	questions := makeQuestions(15)

	for _, page := range []int{0, -1, -100} {
		got := Paginate(questions, page)
		if len(got) != QuestionsPerPage || got[0].ID != 1 {
			t.Errorf("page %d: expected the first page, got %d questions starting at %d",
				page, len(got), got[0].ID)
		}
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	if got := Paginate([]models.Question{}, 1); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestPageParam(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/questions", 1},
		{"/questions?page=3", 3},
		{"/questions?page=abc", 1},
		{"/questions?page=-2", -2},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		if got := PageParam(r); got != tt.want {
			t.Errorf("PageParam(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}
