package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/mauv0809/tennis-directory/internal/score"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var errCancelled = errors.New("evaluation cancelled")

var (
	tennisFlag  int
	fitnessFlag int
	assumeYes   bool
	localOnly   bool
)

func init() {
	evaluateCmd.Flags().IntVar(&tennisFlag, "tennis", 0, "Tennis skills score (1-10); prompts when unset")
	evaluateCmd.Flags().IntVar(&fitnessFlag, "fitness", 0, "Fitness level score (1-10); prompts when unset")
	evaluateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Save without asking for confirmation")
	evaluateCmd.Flags().BoolVar(&localOnly, "local", false, "Only log the evaluation, do not submit it")
	rootCmd.AddCommand(evaluateCmd)
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <id>",
	Short: "Evaluate a player's tennis skills and fitness",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		p, err := c.Player(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		sinks := []evaluation.Sink{{Name: "log", Recorder: evaluation.LogRecorder{}}}
		if !localOnly {
			sinks = append(sinks, evaluation.Sink{Name: "server", Recorder: c})
		}
		// The CLI is short-lived, so its counters stay in a private registry.
		rec := evaluation.Multi(metrics.NewService(prometheus.NewRegistry()), sinks...)

		ev := &evaluator{
			in:      bufio.NewReader(cmd.InOrStdin()),
			out:     cmd.OutOrStdout(),
			tennis:  tennisFlag,
			fitness: fitnessFlag,
			confirm: !assumeYes,
		}
		err = ev.run(cmd.Context(), p, rec)
		if errors.Is(err, errCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Evaluation cancelled.")
			return nil
		}
		return err
	},
}

// evaluator drives an evaluation session from a line-oriented terminal.
// Scores given up front skip their prompt.
type evaluator struct {
	in      *bufio.Reader
	out     io.Writer
	tennis  int
	fitness int
	confirm bool
}

func (ev *evaluator) run(ctx context.Context, p player.Player, rec evaluation.Recorder) error {
	var saveErr error
	onSave := evaluation.SaveTo(ctx, evaluation.RecorderFunc(func(ctx context.Context, e evaluation.Evaluation) error {
		saveErr = rec.Record(ctx, e)
		return saveErr
	}))
	session := evaluation.NewSession(onSave, nil)
	session.Open(&p)

	printPlayer(ev.out, p)
	fmt.Fprintln(ev.out)

	steps := []struct {
		title    string
		preset   int
		selector func() (*score.Selector, error)
	}{
		{"Tennis Skills", ev.tennis, session.TennisSelector},
		{"Fitness Level", ev.fitness, session.FitnessSelector},
	}
	for _, step := range steps {
		sel, err := step.selector()
		if err != nil {
			return err
		}
		if step.preset != 0 {
			if err := sel.Select(step.preset); err != nil {
				session.Cancel()
				return fmt.Errorf("%s: %w", strings.ToLower(step.title), err)
			}
			continue
		}
		if err := ev.prompt(step.title, sel); err != nil {
			session.Cancel()
			return err
		}
	}

	view, ok := session.View()
	if !ok {
		return errCancelled
	}
	fmt.Fprintf(ev.out, "Tennis Skills: %s\nFitness Level: %s\n", view.TennisScore, view.FitnessScore)

	if ev.confirm {
		answer, err := ev.readLine("Save evaluation? [Y/n]: ")
		if err != nil {
			session.Cancel()
			return err
		}
		if a := strings.ToLower(answer); a == "n" || a == "no" {
			session.Cancel()
			return errCancelled
		}
	}

	session.Save()
	if saveErr != nil {
		return fmt.Errorf("failed to save evaluation: %w", saveErr)
	}
	fmt.Fprintln(ev.out, "Evaluation saved.")
	return nil
}

// prompt asks for a score until a valid one is entered. An empty answer keeps
// the current value and "c" cancels.
func (ev *evaluator) prompt(title string, sel *score.Selector) error {
	fmt.Fprintf(ev.out, "%s\n", title)
	for _, opt := range sel.Options() {
		fmt.Fprintf(ev.out, "  %s\n", opt.Label)
	}
	for {
		answer, err := ev.readLine(fmt.Sprintf("%s [%s] (c to cancel): ", title, sel.Caption()))
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "":
			return nil
		case "c", "cancel":
			return errCancelled
		}
		v, err := score.ParseChoice(answer)
		if err == nil {
			err = sel.Select(v)
		}
		if err == nil {
			return nil
		}
		fmt.Fprintf(ev.out, "%s\n", err)
	}
}

func (ev *evaluator) readLine(prompt string) (string, error) {
	fmt.Fprint(ev.out, prompt)
	line, err := ev.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", errCancelled
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
