// Package cli wires configuration, logging and the dispatcher into cobra
// commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"deskclient/backend"
	"deskclient/config"
	"deskclient/dispatcher"
	"deskclient/logging"
	"deskclient/manager"
	"deskclient/queue"
	"deskclient/recording"
	"deskclient/view"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

// app is everything a command needs, built once per process.
type app struct {
	cfg     *config.Config
	client  *backend.Client
	tracker *manager.InflightTracker
	disp    *dispatcher.Dispatcher
	store   recording.FileStore
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	client := backend.NewBackendClient(cfg.Backend.URL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithHeaders(cfg.Backend.Headers),
	)

	store := recording.FileStore{Path: cfg.Recording.StateFile}
	state, err := store.Load()
	if err != nil {
		return nil, err
	}

	tracker := manager.NewInflightTracker(0)
	disp := dispatcher.New(client, view.NewDocument(), queue.NewRunner(ctx, tracker),
		dispatcher.WithRecordingMachine(recording.NewMachine(state)),
		dispatcher.WithRollbackOnFailure(cfg.Recording.RollbackOnFailure),
		dispatcher.WithStateObserver(func(s recording.State) {
			if err := store.Save(s); err != nil {
				log.Warnf("Could not save recording state: %v", err)
			}
		}),
	)

	return &app{
		cfg:     cfg,
		client:  client,
		tracker: tracker,
		disp:    disp,
		store:   store,
	}, nil
}

func (a *app) close() {
	a.disp.Wait()
	a.tracker.Shutdown()
}

type appKey struct{}

func appFrom(cmd *cobra.Command) *app {
	a, _ := cmd.Context().Value(appKey{}).(*app)
	if a == nil {
		panic("command run without app; PersistentPreRunE did not run")
	}
	return a
}

// NewRootCommand builds the deskclient command tree.
func NewRootCommand() *cobra.Command {
	var current *app
	var args *config.CliConfig

	root := &cobra.Command{
		Use:           "deskclient",
		Short:         "Run classroom assistant actions against the backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(args.ConfigFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			level := logging.ParseLevel(cfg.LogLevel)
			if args.Debug {
				level = logrus.DebugLevel
			}
			logging.InitLogger(level)
			log.Debugf("Using backend %s", cfg.Backend.URL)

			current, err = newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, current))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if current != nil {
				current.close()
			}
		},
	}
	args = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		summarizeCmd(),
		quizCmd(),
		visualCmd(),
		classSummaryCmd(),
		recordCmd(),
		shellCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func printElement(w io.Writer, el view.Element) {
	switch {
	case el.HTML != "":
		fmt.Fprintln(w, el.HTML)
	default:
		fmt.Fprintln(w, el.Text)
	}
}
