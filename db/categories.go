package db

import (
	"context"

	"triviaapi/models"
)

func GetAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := pool.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryByID returns pgx.ErrNoRows when the category does not exist.
func GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	var c models.Category
	err := pool.QueryRow(ctx, "SELECT id, type FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Type)
	return c, err
}
