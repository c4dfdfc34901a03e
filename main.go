package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"triviaapi/db"
	"triviaapi/handlers"
	appmiddleware "triviaapi/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	if err := db.Connect(); err != nil {
		log.Fatal("Could not initialize database connection pool:", err)
	}
	defer db.GetPool().Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Could not migrate schema:", err)
	}
	if err := db.Seed(ctx); err != nil {
		log.Fatal("Could not seed data:", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Recover)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "true"},
		MaxAge:         300,
	}))

	r.Get("/categories", handlers.GetCategories)
	r.Get("/categories/{id}/questions", handlers.GetQuestionsByCategory)

	r.Get("/questions", handlers.GetQuestions)
	r.Post("/questions", handlers.CreateOrSearchQuestions)
	r.Delete("/questions/{id}", handlers.DeleteQuestion)
	r.Post("/questions/search", handlers.SearchQuestions)

	r.Post("/quizzes", handlers.GetQuiz)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on port " + port + "...")
	http.ListenAndServe(":"+port, r)
}
