package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/aas-twin/twin-go/pkg/ticklog"
	"github.com/aas-twin/twin-go/pkg/twin"
)

// repl is the interactive command loop around one twin.
type repl struct {
	twin     *twin.Twin
	rl       *readline.Instance
	recorder ticklog.Logger

	// Trace file opened by the record command, nil when not recording.
	traceFile *ticklog.FileLogger
}

// newREPL creates the interactive handler for the given twin.
func newREPL(t *twin.Twin, recorder ticklog.Logger) (*repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "twin> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &repl{
		twin:     t,
		rl:       rl,
		recorder: recorder,
	}, nil
}

// Run starts the interactive command loop. It returns when the user
// exits or input reaches EOF.
func (r *repl) Run() {
	defer r.close()

	r.printHelp()

	for {
		line, err := r.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(r.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if !r.dispatch(input) {
			return
		}
	}
}

// dispatch executes one command line. It returns false when the loop
// should terminate.
func (r *repl) dispatch(input string) bool {
	out := r.rl.Stdout()
	fields := strings.Fields(input)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "tick":
		n := 1
		if len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				fmt.Fprintf(out, "Invalid tick count: %s\n", args[0])
				return true
			}
			n = parsed
		}
		for i := 0; i < n; i++ {
			fmt.Fprintln(out, r.twin.Advance())
			r.record(ticklog.NewTickEvent(r.twin.ID(), r.twin.TickCount(), r.twin.RPM()))
		}

	case "reset":
		r.twin.Reset()
		r.record(ticklog.NewResetEvent(r.twin.ID()))
		fmt.Fprintln(out, "Simulation reset")

	case "get":
		if len(args) != 1 {
			fmt.Fprintln(out, "Usage: get <property>")
			return true
		}
		fmt.Fprintln(out, r.twin.Property(args[0]))

	case "list":
		fmt.Fprintln(out, r.twin.ListProperties())

	case "summary":
		fmt.Fprintln(out, r.twin.Summary())

	case "export":
		fmt.Fprintln(out, r.twin.ExportJSON())

	case "record":
		if len(args) != 1 {
			fmt.Fprintln(out, "Usage: record <file>")
			return true
		}
		r.startRecording(args[0])

	case "stop":
		r.stopRecording()

	case "help", "?":
		r.printHelp()

	case "exit", "quit":
		fmt.Fprintln(out, "Exiting...")
		return false

	default:
		fmt.Fprintf(out, "Unknown command: %s (try 'help')\n", cmd)
	}

	return true
}

// record forwards a trace event to the active recorders.
func (r *repl) record(event ticklog.Event) {
	r.recorder.Log(event)
	if r.traceFile != nil {
		r.traceFile.Log(event)
	}
}

func (r *repl) startRecording(path string) {
	out := r.rl.Stdout()

	if r.traceFile != nil {
		fmt.Fprintln(out, "Already recording; run 'stop' first")
		return
	}

	fl, err := ticklog.NewFileLogger(path)
	if err != nil {
		fmt.Fprintf(out, "Failed to open trace file: %v\n", err)
		return
	}

	r.traceFile = fl
	fmt.Fprintf(out, "Recording simulation events to %s\n", path)
}

func (r *repl) stopRecording() {
	out := r.rl.Stdout()

	if r.traceFile == nil {
		fmt.Fprintln(out, "Not recording")
		return
	}

	_ = r.traceFile.Close()
	r.traceFile = nil
	fmt.Fprintln(out, "Recording stopped")
}

func (r *repl) close() {
	if r.traceFile != nil {
		_ = r.traceFile.Close()
	}
	_ = r.rl.Close()
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.rl.Stdout(), `Commands:
  tick [n]       Advance the simulation n times (default 1)
  reset          Reset the simulation to its initial state
  get <prop>     Look up a nameplate property
  list           List all nameplate properties
  summary        Show the twin summary
  export         Export the shell record as AAS JSON
  record <file>  Record simulation events to a trace file
  stop           Stop recording
  help           Show this help
  exit           Quit`)
}
