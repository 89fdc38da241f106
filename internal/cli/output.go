package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Analysis:
		o.printAnalysis(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Analysis is the result of evaluating a position for the computer
type Analysis struct {
	Board    string      `json:"board"`
	Computer string      `json:"computer"`
	Outcome  string      `json:"outcome"`
	Nodes    int         `json:"nodes"`
	Moves    []MoveScore `json:"moves,omitempty"`
	Best     *MoveScore  `json:"best,omitempty"`
}

// MoveScore is the minimax value of one candidate move
type MoveScore struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

func (o *Output) printAnalysis(a Analysis) {
	fmt.Fprintf(o.out, "Board: %s\n", a.Board)
	fmt.Fprintf(o.out, "Computer: %s\n", a.Computer)
	fmt.Fprintf(o.out, "Outcome: %s\n", a.Outcome)

	if len(a.Moves) > 0 {
		fmt.Fprintf(o.out, "Moves (%d):\n", len(a.Moves))
		for _, m := range a.Moves {
			fmt.Fprintf(o.out, "  - %d,%d: %d\n", m.Row, m.Col, m.Value)
		}
	}

	if a.Best != nil {
		fmt.Fprintf(o.out, "Best move: %d,%d (value %d)\n", a.Best.Row, a.Best.Col, a.Best.Value)
	}
	fmt.Fprintf(o.out, "Nodes searched: %d\n", a.Nodes)
}
