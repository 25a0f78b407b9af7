package domain

import "errors"

// GameRun is one user's attempt at the quiz. Responses maps question id to
// the submitted answer value; resubmitting a question overwrites the previous
// entry.
type GameRun struct {
	ID        string            `json:"id"`
	UserName  string            `json:"userName"`
	CreatedAt int64             `json:"createdAt"` // unix milliseconds
	Responses map[string]string `json:"responses"`
}

// OwnedBy reports whether the run belongs to the given identity.
func (g *GameRun) OwnedBy(userName string) bool {
	return g.UserName == userName
}

func (g *GameRun) Validate() error {
	if g.ID == "" {
		return errors.New("game run: id is required")
	}
	if g.UserName == "" {
		return errors.New("game run: userName is required")
	}
	if g.Responses == nil {
		return errors.New("game run: responses must not be nil")
	}
	return nil
}

// RunResults is the on-demand scoring report for a run. Results holds one
// boolean per answered question; scoring never mutates the run itself.
type RunResults struct {
	ID        string          `json:"id"`
	UserName  string          `json:"userName"`
	CreatedAt int64           `json:"createdAt"`
	Results   map[string]bool `json:"results"`
}
