package game_test

import (
	"fmt"
	"io"

	"github.com/mcoot/tictactoe/internal/model"
)

// scriptedInput replays fixed lines, then reports io.EOF
type scriptedInput struct {
	lines   []string
	prompts []string
}

func (s *scriptedInput) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// firstEmptyInput always answers with the first empty cell of the board
type firstEmptyInput struct {
	board *model.Board
}

func (f *firstEmptyInput) ReadLine(string) (string, error) {
	empty := f.board.EmptyPositions()
	if len(empty) == 0 {
		return "", io.EOF
	}
	return fmt.Sprintf("%d,%d", empty[0].Row, empty[0].Col), nil
}

// recordingView keeps every render call as a short event string
type recordingView struct {
	events  []string
	errors  []error
	results int
	winner  model.Role
}

func (v *recordingView) ShowRoles(roles model.Roles) {
	v.events = append(v.events, fmt.Sprintf("roles %s/%s", roles.Computer, roles.Human))
}

func (v *recordingView) ShowTurn(symbol model.Cell, role model.Role) {
	v.events = append(v.events, fmt.Sprintf("turn %s %s", symbol, role))
}

func (v *recordingView) ShowBoard(board *model.Board) {
	v.events = append(v.events, "board "+board.String())
}

func (v *recordingView) ShowSpacer() {
	v.events = append(v.events, "spacer")
}

func (v *recordingView) ShowInputError(err error) {
	v.errors = append(v.errors, err)
	v.events = append(v.events, "error")
}

func (v *recordingView) ShowResult(board *model.Board, outcome model.Outcome, winner model.Role) {
	v.results++
	v.winner = winner
	v.events = append(v.events, fmt.Sprintf("result %s %s", outcome, board.String()))
}
