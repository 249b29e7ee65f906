package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"deskclient/config"
	"deskclient/view"

	"github.com/spf13/cobra"
)

const shellHelp = `commands:
  summarize TEXT   ask a question about the course PDF
  quiz TEXT        generate a quiz
  visual TEXT      find an image
  class-summary    fetch the class summary
  start | stop     start or stop recording
  show             print every element
  wait             block until pending actions have rendered
  help             this text
  quit             leave the shell`

// outputIDs are echoed to the terminal as they change.
var outputIDs = map[string]bool{
	view.PDFSummaryResult:   true,
	view.QuizResult:         true,
	view.VisualResult:       true,
	view.ClassSummaryResult: true,
	view.RecordingStatus:    true,
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session; actions run in the background and render as they finish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			config.Watch(func(c *config.Config) {
				if c.Backend.URL != a.client.BaseURL() {
					log.Infof("Backend changed to %s", c.Backend.URL)
					a.client.SetBaseURL(c.Backend.URL)
				}
			}, func(err error) {
				log.Warnf("Ignoring config change: %v", err)
			})
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), a)
		},
	}
}

type shell struct {
	mu  sync.Mutex
	out io.Writer
	app *app
}

func (s *shell) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func runShell(in io.Reader, out io.Writer, a *app) error {
	s := &shell{out: out, app: a}
	doc := a.disp.Document()
	doc.OnChange(func(el view.Element) {
		if !outputIDs[el.ID] {
			return
		}
		content := el.Text
		if el.HTML != "" {
			content = el.HTML
		}
		s.printf("[%s] %s\n", el.ID, content)
	})
	defer doc.OnChange(nil)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		verb, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "":
		case "summarize":
			doc.SetValue(view.PDFQuestion, rest)
			a.disp.SummarizeDocument()
		case "quiz":
			doc.SetValue(view.QuizInput, rest)
			a.disp.GenerateQuiz()
		case "visual":
			doc.SetValue(view.VisualQuery, rest)
			a.disp.GenerateVisual()
		case "class-summary":
			a.disp.FetchClassSummary()
		case "start":
			a.disp.StartRecording()
		case "stop":
			a.disp.StopRecording()
		case "show":
			for _, el := range doc.Snapshot() {
				s.printf("%-22s disabled=%-5t value=%q text=%q html=%q\n", el.ID, el.Disabled, el.Value, el.Text, el.HTML)
			}
		case "wait":
			a.disp.Wait()
		case "help":
			s.printf("%s\n", shellHelp)
		case "quit", "exit":
			a.disp.Wait()
			return nil
		default:
			s.printf("unknown command %q, try help\n", verb)
		}
	}
	a.disp.Wait()
	return scanner.Err()
}
