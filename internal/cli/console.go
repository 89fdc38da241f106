package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/game"
)

const boardSeparator = "-------------"

// Console is the terminal side of a match: it prompts the human and draws the board
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

var (
	_ game.Input = (*Console)(nil)
	_ game.View  = (*Console)(nil)
)

// NewConsole creates a Console reading moves from in and drawing to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine prompts and blocks until a full line is read. Lines have no length limit.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ShowRoles prints which symbol each side plays
func (c *Console) ShowRoles(roles model.Roles) {
	fmt.Fprintf(c.out, "CPU: %s | Player: %s\n", roles.Computer, roles.Human)
}

// ShowTurn prints whose turn it is
func (c *Console) ShowTurn(symbol model.Cell, role model.Role) {
	fmt.Fprintf(c.out, "Current player: %s (%s)\n", symbol, roleLabel(role))
}

// ShowBoard draws the grid
func (c *Console) ShowBoard(board *model.Board) {
	fmt.Fprint(c.out, RenderBoard(board))
}

// ShowSpacer prints an empty line between turns
func (c *Console) ShowSpacer() {
	fmt.Fprintln(c.out)
}

// ShowInputError explains why a move was rejected
func (c *Console) ShowInputError(err error) {
	fmt.Fprintln(c.out, inputErrorMessage(err))
}

// ShowResult draws the final board and announces the result
func (c *Console) ShowResult(board *model.Board, outcome model.Outcome, winner model.Role) {
	fmt.Fprintln(c.out, "[Match Result]")
	c.ShowBoard(board)

	switch {
	case outcome.Kind == model.OutcomeTie:
		fmt.Fprintln(c.out, "It's a tie!")
	case winner == model.RoleComputer:
		fmt.Fprintln(c.out, "The CPU won!")
	case winner == model.RoleHuman:
		fmt.Fprintln(c.out, "You won!")
	}
}

// RenderBoard draws the grid with separator lines around every row
func RenderBoard(board *model.Board) string {
	var sb strings.Builder
	sb.WriteString(boardSeparator + "\n")
	for row := 0; row < model.Size; row++ {
		cells := make([]string, model.Size)
		for col := 0; col < model.Size; col++ {
			cells[col] = board.Get(model.Position{Row: row, Col: col}).String()
		}
		fmt.Fprintf(&sb, "| %s |\n", strings.Join(cells, " | "))
		sb.WriteString(boardSeparator + "\n")
	}
	return sb.String()
}

func roleLabel(role model.Role) string {
	if role == model.RoleComputer {
		return "CPU"
	}
	return "You"
}

func inputErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrMalformedInput):
		return "Error: Input must be given in the following form: x,y"
	case errors.Is(err, model.ErrInvalidPosition):
		return "Error: One or more indices given exceed board size."
	case errors.Is(err, model.ErrCellOccupied):
		return "Error: This spot is already taken."
	default:
		return fmt.Sprintf("Error: %s", err)
	}
}
