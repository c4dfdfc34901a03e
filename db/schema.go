package db

import "context"

// Migrate creates the categories and questions tables if they do not exist.
func Migrate(ctx context.Context) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL
		)`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category INTEGER NOT NULL REFERENCES categories(id),
			difficulty INTEGER NOT NULL
		)`)
	return err
}

var seedCategories = []string{
	"Science", "Art", "Geography", "History", "Entertainment", "Sports",
}

type seedQuestion struct {
	question   string
	answer     string
	category   int
	difficulty int
}

var seedQuestions = []seedQuestion{
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
	{"What is the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 5, 3},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6, 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	{"Who invented Peanut Butter?", "George Washington Carver", 4, 2},
	{"What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
	{"Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", 2, 1},
	{"La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
	{"Which US state contains an area known as the Upper Peninsula?", "Michigan", 3, 2},
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{"What is the heaviest organ in the human body?", "The Liver", 1, 4},
	{"Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
	{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4, 4},
}

// Seed populates the stock categories and questions. It is idempotent: a
// store that already has categories is left untouched.
func Seed(ctx context.Context) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, c := range seedCategories {
		if _, err := tx.Exec(ctx, "INSERT INTO categories (type) VALUES ($1)", c); err != nil {
			return err
		}
	}

	for _, q := range seedQuestions {
		_, err := tx.Exec(ctx,
			"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4)",
			q.question, q.answer, q.category, q.difficulty)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
