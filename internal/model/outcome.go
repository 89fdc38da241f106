package model

// OutcomeKind classifies the state of a board
type OutcomeKind uint8

const (
	OutcomeInProgress OutcomeKind = iota
	OutcomeWin
	OutcomeTie
)

// Outcome is the result of evaluating a board. Winner is only set for OutcomeWin.
type Outcome struct {
	Kind   OutcomeKind
	Winner Cell
}

// InProgress is the only non-terminal outcome
var InProgress = Outcome{Kind: OutcomeInProgress}

// Tie is a full board with no won line
var Tie = Outcome{Kind: OutcomeTie}

// WinFor returns the outcome of a line completed by the given symbol
func WinFor(symbol Cell) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: symbol}
}

// IsTerminal returns true once the match is decided
func (o Outcome) IsTerminal() bool {
	return o.Kind != OutcomeInProgress
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWin:
		return o.Winner.String() + " wins"
	case OutcomeTie:
		return "tie"
	default:
		return "in progress"
	}
}
