package domain

import "errors"

// Question is a catalog record, seeded out-of-band. CorrectAnswer is the
// string form of the winning option index and must never leave the server
// through the public read paths.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionView is the public projection of a Question, with the answer key
// stripped.
type QuestionView struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (q *Question) View() QuestionView {
	return QuestionView{ID: q.ID, Question: q.Question, Options: q.Options}
}

func (q *Question) Validate() error {
	if q.ID == "" {
		return errors.New("question: id is required")
	}
	if q.Question == "" {
		return errors.New("question: prompt is required")
	}
	if len(q.Options) == 0 {
		return errors.New("question: options are required")
	}
	return nil
}
