package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/store"
)

// Seeds the question collection. With a file argument the questions are read
// from that JSON file (including correctAnswer); without one a small starter
// set is written. Existing questions are replaced wholesale.
// Usage: seed_questions [questions.json]
func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	questions := defaultQuestions()
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("read %s failed: %v", os.Args[1], err)
		}
		if err := json.Unmarshal(data, &questions); err != nil {
			log.Fatalf("decode %s failed: %v", os.Args[1], err)
		}
	}

	st := store.New(dataDir)
	repo := repository.NewQuestionRepository(st)

	if err := repo.ReplaceAll(context.Background(), questions); err != nil {
		log.Fatalf("seed questions failed: %v", err)
	}

	log.Printf("seeded %d questions into %s\n", len(questions), dataDir)
}

func defaultQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:            "Q1",
			Question:      "Which planet is closest to the sun?",
			Options:       []string{"Mercury", "Venus", "Mars", "Jupiter"},
			CorrectAnswer: "0",
		},
		{
			ID:            "Q2",
			Question:      "What is the chemical symbol for gold?",
			Options:       []string{"Ag", "Au", "Gd", "Go"},
			CorrectAnswer: "1",
		},
		{
			ID:            "Q3",
			Question:      "How many continents are there?",
			Options:       []string{"five", "six", "seven", "eight"},
			CorrectAnswer: "2",
		},
	}
}
