package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scamshield/accesskit/pkg/accesskit"
	"github.com/scamshield/accesskit/pkg/fileclass"
	"github.com/scamshield/accesskit/pkg/inspector"
	"github.com/scamshield/accesskit/pkg/prefs"
	"github.com/scamshield/accesskit/pkg/profiling"
	"github.com/scamshield/accesskit/pkg/speech"
)

var (
	cpuProfile string
	memProfile string
	pprofAddr  string
	debug      bool
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var discoverEngine = speech.Discover

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "accesskit [path]",
		Short: "Accessibility controls and file classification for analysis reports",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,

		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	root.PersistentFlags().StringVar(&memProfile, "memprofile", "", "write memory profile to `file`")
	root.PersistentFlags().StringVar(&pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.AddCommand(newClassifyCmd(), newSpeakCmd())
	return root
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func startProfiling() (stop func()) {
	if pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(pprofAddr, nil); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}
	var stops []func()
	if cpuProfile != "" {
		stops = append(stops, profiling.DoCPUProfiling(cpuProfile))
	}
	if memProfile != "" {
		stops = append(stops, profiling.DoMemProfiling(memProfile))
	}
	return func() {
		for _, s := range stops {
			s()
		}
	}
}

var setupApp = accesskit.SetupApp

var newApp = func(o accesskit.Options) *tview.Application {
	app := tview.NewApplication()
	setupApp(app, o)
	return app
}

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}

func runTUI(_ *cobra.Command, args []string) error {
	stop := startProfiling()
	defer stop()

	log := newLogger()
	o := accesskit.Options{
		Registry: fileclass.DefaultRegistry(),
		Engine:   discoverEngine(log),
		Store:    prefs.NewStore(),
		Log:      log,
	}
	if len(args) > 0 {
		o.Path = args[0]
	}
	return run(newApp(o))
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <path>",
		Short: "Classify a file and print its report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := inspector.BuildReport(fileclass.DefaultRegistry(), args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newSpeakCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "speak <text>",
		Short: "Speak text through the host synthesizer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("nothing to speak")
			}
			log := newLogger()
			engine := discoverEngine(log)
			if engine == nil {
				return speech.ErrUnavailable
			}
			return speakAndWait(engine, log, lang, text)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "language code for locale resolution")
	return cmd
}

func speakAndWait(engine speech.Engine, log zerolog.Logger, lang, text string) error {
	done := make(chan struct{})
	var playErr error
	p := speech.NewPlayback(engine,
		speech.WithLogger(log),
		speech.WithLanguage(func() string { return lang }),
		speech.WithNotify(func(err error) { playErr = err }),
		speech.WithOnChange(func(speaking bool) {
			if !speaking {
				close(done)
			}
		}),
	)
	p.Play(text)
	<-done
	return playErr
}
