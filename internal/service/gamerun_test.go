package service

import (
	"context"
	"errors"
	"testing"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/store"
)

func newRunFixture(t *testing.T) (*GameRunService, *store.Store) {
	t.Helper()

	s := store.New(t.TempDir())
	questions := []domain.Question{
		{ID: "Q1", Question: "q1?", Options: []string{"a", "b"}, CorrectAnswer: "0"},
		{ID: "Q2", Question: "q2?", Options: []string{"a", "b"}, CorrectAnswer: "1"},
	}
	if err := s.Save("questions", questions); err != nil {
		t.Fatalf("seed questions failed: %v", err)
	}

	runs := repository.NewGameRunRepository(s)
	qs := repository.NewQuestionRepository(s)
	return NewGameRunService(runs, qs), s
}

func TestCreateRunDistinctIDs(t *testing.T) {
	svc, _ := newRunFixture(t)
	ctx := context.Background()

	a, err := svc.CreateRun(ctx, "Max")
	if err != nil {
		t.Fatalf("create run failed: %v", err)
	}
	b, err := svc.CreateRun(ctx, "Max")
	if err != nil {
		t.Fatalf("second create run failed: %v", err)
	}

	if a.ID == b.ID {
		t.Fatalf("expected distinct run ids, both %s", a.ID)
	}
	if a.UserName != "Max" || b.UserName != "Max" {
		t.Fatalf("runs must be owned by creator")
	}
	if len(a.Responses) != 0 {
		t.Fatalf("new run must start with empty responses")
	}
}

func TestCreateRunWorksOnFreshDataDir(t *testing.T) {
	s := store.New(t.TempDir())
	svc := NewGameRunService(repository.NewGameRunRepository(s), repository.NewQuestionRepository(s))

	// no game-runs file exists yet
	if _, err := svc.CreateRun(context.Background(), "Max"); err != nil {
		t.Fatalf("create run on fresh dir failed: %v", err)
	}
}

func TestSubmitResponseLastWriteWins(t *testing.T) {
	svc, _ := newRunFixture(t)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, "Max")
	if err != nil {
		t.Fatalf("create run failed: %v", err)
	}

	if _, err := svc.SubmitResponse(ctx, run.ID, "Max", "Q1", "1"); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	updated, err := svc.SubmitResponse(ctx, run.ID, "Max", "Q1", "0")
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if updated.Responses["Q1"] != "0" {
		t.Fatalf("expected second answer to overwrite, got %q", updated.Responses["Q1"])
	}
	if len(updated.Responses) != 1 {
		t.Fatalf("resubmission must not append, got %d entries", len(updated.Responses))
	}
}

func TestSubmitResponsePersists(t *testing.T) {
	svc, s := newRunFixture(t)
	ctx := context.Background()

	run, _ := svc.CreateRun(ctx, "Max")
	if _, err := svc.SubmitResponse(ctx, run.ID, "Max", "Q2", "1"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// a fresh service over the same data dir sees the write
	again := NewGameRunService(repository.NewGameRunRepository(s), repository.NewQuestionRepository(s))
	results, err := again.GetResults(ctx, run.ID, "Max")
	if err != nil {
		t.Fatalf("get results failed: %v", err)
	}
	if v, ok := results.Results["Q2"]; !ok || !v {
		t.Fatalf("expected persisted Q2 answer to score true, got %+v", results.Results)
	}
}

func TestSubmitResponseForeignRunForbidden(t *testing.T) {
	svc, _ := newRunFixture(t)
	ctx := context.Background()

	run, _ := svc.CreateRun(ctx, "Max")

	_, err := svc.SubmitResponse(ctx, run.ID, "Eve", "Q1", "0")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign run, got %v", err)
	}
}

func TestSubmitResponseMissingRunForbidden(t *testing.T) {
	svc, _ := newRunFixture(t)

	// same error whether the run is foreign or absent
	_, err := svc.SubmitResponse(context.Background(), "no-such-run", "Eve", "Q1", "0")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for missing run, got %v", err)
	}
}

func TestGetResultsScoring(t *testing.T) {
	svc, _ := newRunFixture(t)
	ctx := context.Background()

	run, _ := svc.CreateRun(ctx, "Max")
	svc.SubmitResponse(ctx, run.ID, "Max", "Q1", "0") // correct
	svc.SubmitResponse(ctx, run.ID, "Max", "Q2", "0") // wrong, correct is "1"

	results, err := svc.GetResults(ctx, run.ID, "Max")
	if err != nil {
		t.Fatalf("get results failed: %v", err)
	}

	if results.ID != run.ID || results.UserName != "Max" {
		t.Fatalf("results identify the wrong run: %+v", results)
	}
	if results.CreatedAt != run.CreatedAt {
		t.Fatalf("createdAt mismatch: %d vs %d", results.CreatedAt, run.CreatedAt)
	}
	if v, ok := results.Results["Q1"]; !ok || !v {
		t.Fatalf("Q1 should score true: %+v", results.Results)
	}
	if v, ok := results.Results["Q2"]; !ok || v {
		t.Fatalf("Q2 should score false: %+v", results.Results)
	}
}

func TestGetResultsSkipsUnknownQuestion(t *testing.T) {
	svc, _ := newRunFixture(t)
	ctx := context.Background()

	run, _ := svc.CreateRun(ctx, "Max")
	svc.SubmitResponse(ctx, run.ID, "Max", "Q1", "0")
	svc.SubmitResponse(ctx, run.ID, "Max", "GONE", "3") // no such question

	results, err := svc.GetResults(ctx, run.ID, "Max")
	if err != nil {
		t.Fatalf("stale response key must not fail the report: %v", err)
	}

	if _, ok := results.Results["GONE"]; ok {
		t.Fatalf("unknown question must be skipped, got %+v", results.Results)
	}
	if v, ok := results.Results["Q1"]; !ok || !v {
		t.Fatalf("known questions must still be scored: %+v", results.Results)
	}
}

func TestGetResultsForeignRunForbidden(t *testing.T) {
	svc, _ := newRunFixture(t)
	ctx := context.Background()

	run, _ := svc.CreateRun(ctx, "Max")

	if _, err := svc.GetResults(ctx, run.ID, "Eve"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetResults(ctx, "no-such-run", "Max"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for missing run, got %v", err)
	}
}

func TestGetResultsDoesNotMutateRun(t *testing.T) {
	svc, _ := newRunFixture(t)
	ctx := context.Background()

	run, _ := svc.CreateRun(ctx, "Max")
	svc.SubmitResponse(ctx, run.ID, "Max", "Q1", "0")

	if _, err := svc.GetResults(ctx, run.ID, "Max"); err != nil {
		t.Fatalf("get results failed: %v", err)
	}

	// scoring again after more answers reflects the new state; nothing is
	// frozen by the first report
	svc.SubmitResponse(ctx, run.ID, "Max", "Q2", "1")
	results, err := svc.GetResults(ctx, run.ID, "Max")
	if err != nil {
		t.Fatalf("second get results failed: %v", err)
	}
	if len(results.Results) != 2 {
		t.Fatalf("expected both answers scored, got %+v", results.Results)
	}
}
