package export

import (
	"encoding/json"
	"io"
	"os"
)

// CultureResult is one culture's row in a benchmark report.
type CultureResult struct {
	Culture  string    `json:"culture"`
	Program  string    `json:"program"`
	Frames   int       `json:"frames"`
	MeanMS   float64   `json:"mean_ms"`
	P95MS    float64   `json:"p95_ms"`
	MaxMS    float64   `json:"max_ms"`
	InBudget float64   `json:"in_budget"`
	Series   []float64 `json:"series_ms,omitempty"`
}

// Report is the JSON form of a benchmark run.
type Report struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	FPS     int             `json:"fps"`
	Seed    int64           `json:"seed"`
	Results []CultureResult `json:"results"`
}

func WriteReport(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// SaveReport writes r to path, or to stdout when path is "-".
func SaveReport(path string, r *Report) error {
	if path == "-" {
		return WriteReport(os.Stdout, r)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteReport(file, r)
}
