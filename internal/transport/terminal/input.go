package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

const (
	quitCommand = "Q"

	namePrompt   = ">> Please enter player %d name: "
	columnPrompt = ">> Please choose a column to insert your die. (L)eft, (M)iddle, or (R)ight: "
	replayPrompt = ">> Would you like to play again? (Y/N) "

	invalidColumnMsg = "Please put a valid entry of L, M, or R!"
)

type input struct {
	out    io.Writer
	lines  chan string
	closed *atomic.Bool
}

// NewInput reads answers line by line from r and writes prompts to w.
// Entering Q at any prompt, closing r or cancelling the context ends the
// session with domain.ErrCancelled.
func NewInput(r io.Reader, w io.Writer) *input {
	in := &input{
		out:    w,
		lines:  make(chan string),
		closed: atomic.NewBool(false),
	}
	go in.scan(r)
	return in
}

func (in *input) scan(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		in.lines <- scanner.Text()
	}
	in.closed.Store(true)
	close(in.lines)
}

func (in *input) readLine(ctx context.Context, prompt string) (string, error) {
	if in.closed.Load() {
		return "", errors.WithMessage(domain.ErrCancelled, "input closed")
	}
	fmt.Fprint(in.out, prompt)
	select {
	case <-ctx.Done():
		return "", errors.WithMessage(domain.ErrCancelled, ctx.Err().Error())
	case line, ok := <-in.lines:
		if !ok {
			return "", errors.WithMessage(domain.ErrCancelled, "input closed")
		}
		if strings.EqualFold(strings.TrimSpace(line), quitCommand) {
			return "", domain.ErrCancelled
		}
		return line, nil
	}
}

func (in *input) AwaitRoll(ctx context.Context, player string) error {
	prompt := fmt.Sprintf("\n%s %s MUST PRESS ENTER TO ROLL THE DIE! %s\n",
		strings.Repeat(">", 10), strings.ToUpper(player), strings.Repeat("<", 10))
	_, err := in.readLine(ctx, prompt)
	return err
}

func (in *input) ChooseColumn(ctx context.Context, _ string) (domain.ColumnIndex, error) {
	for {
		line, err := in.readLine(ctx, columnPrompt)
		if err != nil {
			return 0, err
		}
		column, err := domain.ParseColumn(line)
		if errors.Is(err, domain.ErrInvalidColumnSelector) {
			fmt.Fprintln(in.out, invalidColumnMsg)
			continue
		}
		return column, err
	}
}

func (in *input) PlayerName(ctx context.Context, seat int) (string, error) {
	return in.readLine(ctx, fmt.Sprintf(namePrompt, seat))
}

func (in *input) ConfirmReplay(ctx context.Context) (bool, error) {
	line, err := in.readLine(ctx, replayPrompt)
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "Y", "YES":
		return true, nil
	default:
		return false, nil
	}
}
