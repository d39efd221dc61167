package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
	"github.com/aliskhannn/learn-words-bot/internal/service"
)

// Trainer is the training session driven by the console.
type Trainer interface {
	NextQuestion() *entities.Question
	SubmitAnswer(ctx context.Context, index int) (bool, error)
	Statistics() (entities.Statistics, error)
}

var errInputClosed = errors.New("input closed")

// App runs the interactive menu on a terminal.
type App struct {
	in      io.Reader
	lines   <-chan string
	out     io.Writer
	trainer Trainer
	logger  *zap.Logger
}

func NewApp(in io.Reader, out io.Writer, trainer Trainer, logger *zap.Logger) *App {
	return &App{
		in:      in,
		out:     out,
		trainer: trainer,
		logger:  logger,
	}
}

// Run shows the menu until the user exits, input ends or ctx is done.
// It returns an error only when the session cannot continue.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.lines = a.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		a.println(msgMenu)

		input, err := a.readLine(ctx)
		if err != nil {
			return nil
		}

		switch input {
		case "1":
			err = a.learn(ctx)
		case "2":
			a.statistics()
		case "0":
			a.println(msgBye)
			return nil
		default:
			a.println(msgUnknownMenuItem)
		}

		if errors.Is(err, errInputClosed) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) learn(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		q := a.trainer.NextQuestion()
		if q == nil {
			a.println(msgAllLearned)
			return nil
		}

		a.println(formatQuestion(q))

		choice, err := a.readChoice(ctx, len(q.AskAnswer))
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		ok, err := a.trainer.SubmitAnswer(ctx, choice-1)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}

		if ok {
			a.println(msgCorrect)
		} else {
			a.println(formatWrongAnswer(q))
		}
	}
}

// readChoice reads until the user enters a number between 0 and options.
func (a *App) readChoice(ctx context.Context, options int) (int, error) {
	for {
		input, err := a.readLine(ctx)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(input)
		if err == nil && n >= 0 && n <= options {
			return n, nil
		}

		a.println(formatInvalidChoice(options))
	}
}

func (a *App) statistics() {
	stats, err := a.trainer.Statistics()
	if errors.Is(err, service.ErrEmptyDictionary) {
		a.println(msgEmptyDictionary)
		return
	}
	if err != nil {
		a.logger.Error("failed to compute statistics", zap.Error(err))
		return
	}

	a.println(formatStatistics(stats))
}

// readLines scans input in its own goroutine so a blocked read does not
// keep Run from noticing ctx cancellation.
func (a *App) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			a.logger.Warn("failed to read input", zap.Error(err))
		}
	}()

	return lines
}

func (a *App) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-a.lines:
		if !ok {
			return "", errInputClosed
		}
		return line, nil
	}
}

func (a *App) println(s string) {
	if _, err := fmt.Fprintln(a.out, s); err != nil {
		a.logger.Warn("failed to write output", zap.Error(err))
	}
}
