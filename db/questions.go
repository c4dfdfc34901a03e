package db

import (
	"context"

	"triviaapi/models"

	"github.com/jackc/pgx/v5"
)

const questionColumns = "id, question, answer, category, difficulty"

func scanQuestions(rows pgx.Rows) ([]models.Question, error) {
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ListQuestions returns every question ordered by id ascending.
func ListQuestions(ctx context.Context) ([]models.Question, error) {
	rows, err := pool.Query(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count)
	return count, err
}

// GetQuestionByID returns pgx.ErrNoRows when the question does not exist.
func GetQuestionByID(ctx context.Context, id int) (models.Question, error) {
	var q models.Question
	err := pool.QueryRow(ctx, "SELECT "+questionColumns+" FROM questions WHERE id = $1", id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, err
}

// InsertQuestion stores q and returns the assigned id.
func InsertQuestion(ctx context.Context, q models.Question) (int, error) {
	var id int
	err := pool.QueryRow(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id",
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	return id, err
}

// DeleteQuestion removes the question with the given id, returning
// pgx.ErrNoRows when nothing was deleted.
func DeleteQuestion(ctx context.Context, id int) error {
	result, err := pool.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SearchQuestions performs a case-insensitive substring match against the
// question text, ordered by id ascending.
func SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	rows, err := pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE $1 ORDER BY id",
		"%"+term+"%")
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func QuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	rows, err := pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id",
		categoryID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// QuizCandidates returns the candidate pool for the next quiz question. A
// categoryID of 0 selects every question; otherwise the category must match
// and ids in previous are excluded at the storage level.
func QuizCandidates(ctx context.Context, categoryID int, previous []int) ([]models.Question, error) {
	if previous == nil {
		previous = []int{}
	}

	if categoryID == 0 {
		return ListQuestions(ctx)
	}

	rows, err := pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 AND NOT (id = ANY($2)) ORDER BY id",
		categoryID, previous)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}
