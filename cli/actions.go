package cli

import (
	"fmt"
	"strings"

	"deskclient/dispatcher"
	"deskclient/queue"
	"deskclient/view"

	"github.com/spf13/cobra"
)

// inputAction builds a command that fills one input element from its
// arguments, fires the action and prints the output element once rendered.
func inputAction(use, short, input, output string, fire func(*dispatcher.Dispatcher) *queue.Request) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			doc := a.disp.Document()
			doc.SetValue(input, strings.Join(args, " "))
			return runAndPrint(cmd, a, output, fire)
		},
	}
}

func runAndPrint(cmd *cobra.Command, a *app, output string, fire func(*dispatcher.Dispatcher) *queue.Request) error {
	if err := fire(a.disp).Wait(cmd.Context()); err != nil {
		return fmt.Errorf("waiting for %s: %w", output, err)
	}
	el, _ := a.disp.Document().Element(output)
	printElement(cmd.OutOrStdout(), el)
	return nil
}

func summarizeCmd() *cobra.Command {
	return inputAction("summarize <question>", "Ask a question about the course PDF",
		view.PDFQuestion, view.PDFSummaryResult, (*dispatcher.Dispatcher).SummarizeDocument)
}

func quizCmd() *cobra.Command {
	return inputAction("quiz <input>", "Generate a quiz",
		view.QuizInput, view.QuizResult, (*dispatcher.Dispatcher).GenerateQuiz)
}

func visualCmd() *cobra.Command {
	return inputAction("visual <query>", "Find the best image for a query",
		view.VisualQuery, view.VisualResult, (*dispatcher.Dispatcher).GenerateVisual)
}

func classSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "class-summary",
		Short: "Fetch the summary of the recorded class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, appFrom(cmd), view.ClassSummaryResult, (*dispatcher.Dispatcher).FetchClassSummary)
		},
	}
}

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Start or stop the classroom recording",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Start recording (no-op while already recording)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return recordAndPrint(cmd, (*dispatcher.Dispatcher).StartRecording)
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop recording (no-op while idle)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return recordAndPrint(cmd, (*dispatcher.Dispatcher).StopRecording)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the saved recording state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), appFrom(cmd).disp.RecordingState())
				return nil
			},
		},
	)
	return cmd
}

// recordAndPrint is runAndPrint for the recording controls. A start or stop
// skipped by the guard leaves the status empty in a fresh process, so the
// saved state is printed instead.
func recordAndPrint(cmd *cobra.Command, fire func(*dispatcher.Dispatcher) *queue.Request) error {
	a := appFrom(cmd)
	if err := fire(a.disp).Wait(cmd.Context()); err != nil {
		return fmt.Errorf("waiting for %s: %w", view.RecordingStatus, err)
	}
	el, _ := a.disp.Document().Element(view.RecordingStatus)
	if el.Text == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Recording status: already %s\n", a.disp.RecordingState())
		return nil
	}
	printElement(cmd.OutOrStdout(), el)
	return nil
}
