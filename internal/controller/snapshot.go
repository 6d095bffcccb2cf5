package controller

import "github.com/muurk/wordhunt/internal/solverapi"

// Snapshot is a serialisable copy of the controller state
type Snapshot struct {
	Input        string   `json:"input"`
	PrevBoard    string   `json:"prev_board"`
	SortByLength bool     `json:"sort_by_length"`
	Mode         string   `json:"mode"`
	Status       string   `json:"status"`
	Results      []string `json:"results"`
	Loading      bool     `json:"loading"`
	Submitted    bool     `json:"submitted"`
	Error        bool     `json:"error"`
	Failed       bool     `json:"failed"`
	Message      string   `json:"message,omitempty"`
	Sections     Sections `json:"sections"`
}

// Snapshot copies the current state
func (c *Controller) Snapshot() Snapshot {
	results := make([]string, len(c.results))
	copy(results, c.results)

	s := Snapshot{
		Input:        c.input,
		PrevBoard:    c.prevBoard,
		SortByLength: c.sortByLength,
		Mode:         c.mode.String(),
		Status:       c.status.String(),
		Results:      results,
		Loading:      c.Loading(),
		Submitted:    c.Submitted(),
		Error:        c.Error(),
		Failed:       c.Failed(),
		Sections:     c.Sections(),
	}

	if c.err != nil {
		s.Message = solverapi.ShortMessage(c.err)
	}

	return s
}
