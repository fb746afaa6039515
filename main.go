// Copyright
// SPDX-License-Identifier: MIT
// valuestep: a percent/pixel value stepper for the terminal, plus headless tools around it
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"

	cfg "valuestep/internal/config"
	"valuestep/internal/logx"
	appTUI "valuestep/internal/tui"
	"valuestep/internal/tui/state"
	"valuestep/internal/value"
)

const Version = "0.3.0"

// errUsage marks errors that should exit with status 2.
var errUsage = errors.New("usage")

/* ---------- CLI ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	var err error
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "--version":
		fmt.Println("valuestep", Version)
	case "run":
		err = cmdRun(os.Args[2:])
	case "eval":
		err = cmdEval(os.Args[2:], os.Stdin, os.Stdout)
	case "format":
		err = cmdFormat(os.Args[2:], os.Stdout)
	case "extract":
		err = cmdExtract(os.Args[2:], os.Stdout)
	case "init":
		err = cmdInit(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`valuestep ` + Version + `
A value stepper with a percent/pixel unit toggle.
USAGE
  valuestep <command> [options]
COMMANDS
  run          Open the stepper in the terminal and print the committed value on quit
  eval         Apply a script of events (focus, type, blur, step, unit, hover) and print the result
  format       Print numbers the way the stepper displays them
  extract      Print the number the stepper would read from each text
  init         Write a defaults file (unit, value, color)
  help         Show help (try: valuestep help eval)
  version      Print version
NOTES
  • Defaults come from ` + defaultConfigHint() + ` unless --config is given.
  • Flags override the defaults file. NO_COLOR disables color.`)
}

func helpTopic(name string) {
	switch name {
	case "run":
		fmt.Println(`USAGE
  valuestep run [--unit %|px] [--value N] [--config PATH] [--no-color] [--log-file PATH] [-v]
KEYS
  tab/enter      edit the field; enter/esc/tab commits
  +/-            step by 0.1 (also →/←)
  % p u          percent, pixels, toggle
  h/l            move the hover highlight across -, field, +
  y              copy the value
  ?              help
  q              quit`)
	case "eval":
		fmt.Println(`USAGE
  valuestep eval [--unit %|px] [--value N] [--config PATH] [--json] [FILE|-]
SCRIPT
  One event per line; blank lines and # comments are skipped.
    focus | blur | type <text> | step +|- | inc | dec | unit %|px
    hover minus|field|plus on|off`)
	case "format":
		fmt.Println(`USAGE
  valuestep format N [N...]`)
	case "extract":
		fmt.Println(`USAGE
  valuestep extract TEXT [TEXT...]`)
	case "init":
		fmt.Println(`USAGE
  valuestep init [--config PATH] [--yes]
  Without --yes a short form asks for the starting unit, value and color.`)
	default:
		usage()
	}
}

func defaultConfigHint() string {
	if p, err := cfg.DefaultPath(); err == nil {
		return p
	}
	return "the user config directory"
}

/* ---------- shared flags ---------- */

// startFlags are the options every stepper-driving command accepts.
type startFlags struct {
	unit    string
	value   string
	config  string
	noColor bool
	logFile string
	verbose bool
}

func (f *startFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.unit, "unit", "", "starting unit: % or px")
	fs.StringVar(&f.value, "value", "", "starting value (comma or point decimals)")
	fs.StringVar(&f.config, "config", "", "defaults file (YAML)")
	fs.StringVar(&f.logFile, "log-file", "", "append logs to this file")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
}

// settings is the merged result of flags, defaults file and built-ins.
type settings struct {
	unit    value.Unit
	value   float64
	noColor bool
	logFile string
	verbose bool
}

func resolve(f startFlags) (settings, error) {
	path, optional := f.config, false
	if path == "" {
		p, err := cfg.DefaultPath()
		if err != nil {
			return settings{}, err
		}
		path, optional = p, true
	}
	c, err := cfg.Load(path, optional)
	if err != nil {
		return settings{}, err
	}
	st := settings{noColor: c.NoColor || f.noColor, logFile: c.LogFile, verbose: f.verbose}
	if st.unit, err = c.StartUnit(); err != nil {
		return settings{}, err
	}
	if st.value, err = c.StartValue(); err != nil {
		return settings{}, err
	}
	if f.unit != "" {
		if st.unit, err = value.ParseUnit(f.unit); err != nil {
			return settings{}, fmt.Errorf("%w: --unit: %v", errUsage, err)
		}
	}
	if f.value != "" {
		v, ok := value.Extract(f.value)
		if !ok {
			return settings{}, fmt.Errorf("%w: --value %q is not a number", errUsage, f.value)
		}
		st.value = v
	}
	if f.logFile != "" {
		st.logFile = f.logFile
	}
	return st, nil
}

/* ---------- commands ---------- */

func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var f startFlags
	f.register(fs)
	fs.BoolVar(&f.noColor, "no-color", false, "disable color")
	_ = fs.Parse(args)

	st, err := resolve(f)
	if err != nil {
		return err
	}
	log, closer, err := logx.New(st.logFile, st.verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.WithFields(logrus.Fields{"unit": st.unit.String(), "value": value.Format(st.value)}).Info("stepper started")
	final, err := appTUI.Run(appTUI.Options{Unit: st.unit, Value: st.value, NoColor: st.noColor, Log: log})
	if err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	log.WithField("value", final.Text+final.Unit.String()).Info("stepper closed")
	fmt.Println(final.Text + final.Unit.String())
	return nil
}

// evalResult is the JSON shape printed by `eval --json`.
type evalResult struct {
	Unit              string  `json:"unit"`
	Value             float64 `json:"value"`
	Text              string  `json:"text"`
	PreviousValid     float64 `json:"previous_valid"`
	Focused           bool    `json:"focused"`
	DecrementDisabled bool    `json:"decrement_disabled"`
	IncrementDisabled bool    `json:"increment_disabled"`
	Tooltip           string  `json:"tooltip,omitempty"`
	LastOutcome       string  `json:"last_outcome,omitempty"`
	LastTyped         string  `json:"last_typed,omitempty"`
	Events            int     `json:"events"`
}

func cmdEval(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	var f startFlags
	f.register(fs)
	asJSON := fs.Bool("json", false, "print the final state as JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: eval takes at most one script", errUsage)
	}

	st, err := resolve(f)
	if err != nil {
		return err
	}
	log, closer, err := logx.New(st.logFile, st.verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	src := stdin
	if name := fs.Arg(0); name != "" && name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer file.Close()
		src = file
	}
	events, err := state.ParseScript(src)
	if err != nil {
		return err
	}

	ctl := state.NewController(state.Mount(st.unit, st.value))
	for _, e := range events {
		s := ctl.Dispatch(e)
		log.WithFields(logrus.Fields{
			"event": e.Kind.String(),
			"value": value.Format(s.Value),
			"text":  s.Text,
			"prev":  value.Format(s.PreviousValid),
		}).Debug("eval")
	}
	return printState(stdout, ctl.State(), len(events), *asJSON)
}

func printState(w io.Writer, s state.State, n int, asJSON bool) error {
	res := evalResult{
		Unit:              s.Unit.String(),
		Value:             value.Round9(s.Value),
		Text:              s.Text,
		PreviousValid:     s.PreviousValid,
		Focused:           s.Focused,
		DecrementDisabled: state.DecrementDisabled(s),
		IncrementDisabled: state.IncrementDisabled(s),
		Events:            n,
	}
	switch {
	case state.ShowMinTooltip(s):
		res.Tooltip = state.MinTooltip
	case state.ShowMaxTooltip(s):
		res.Tooltip = state.MaxTooltip
	}
	if s.Committed {
		res.LastOutcome = s.Last.Outcome.String()
		res.LastTyped = s.Last.Raw
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(w, "value:      %s%s\n", s.Text, res.Unit)
	fmt.Fprintf(w, "previous:   %s\n", value.Format(s.PreviousValid))
	fmt.Fprintf(w, "focused:    %t\n", s.Focused)
	fmt.Fprintf(w, "decrement:  %s\n", enabled(!res.DecrementDisabled))
	fmt.Fprintf(w, "increment:  %s\n", enabled(!res.IncrementDisabled))
	if res.Tooltip != "" {
		fmt.Fprintf(w, "tooltip:    %s\n", res.Tooltip)
	}
	if res.LastOutcome != "" {
		fmt.Fprintf(w, "last:       %s (typed %q)\n", res.LastOutcome, res.LastTyped)
	}
	return nil
}

func enabled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func cmdFormat(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: format needs at least one number", errUsage)
	}
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return fmt.Errorf("format %q: %w", a, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("format %q: not a finite number", a)
		}
		fmt.Fprintln(stdout, value.Format(v))
	}
	return nil
}

func cmdExtract(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: extract needs at least one text", errUsage)
	}
	for _, a := range args {
		v, ok := value.Extract(a)
		if !ok {
			fmt.Fprintln(stdout, "invalid")
			continue
		}
		fmt.Fprintln(stdout, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil
}

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", "", "where to write the defaults file")
	yes := fs.Bool("yes", false, "write built-in defaults without asking")
	_ = fs.Parse(args)

	if *path == "" {
		p, err := cfg.DefaultPath()
		if err != nil {
			return err
		}
		*path = p
	}

	c := cfg.Default()
	if !*yes {
		unit := value.Percent.String()
		raw := "1"
		color := true
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Starting unit").
				Options(huh.NewOption("Percent (%)", "%"), huh.NewOption("Pixels (px)", "px")).
				Value(&unit),
			huh.NewInput().
				Title("Starting value").
				Value(&raw).
				Validate(func(s string) error { return checkStartValue(unit, s) }),
			huh.NewConfirm().
				Title("Use color?").
				Value(&color),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled; nothing written.")
				return nil
			}
			return fmt.Errorf("init form: %w", err)
		}
		v, _ := value.Extract(raw)
		c = cfg.Config{Unit: unit, Value: value.Round9(v), NoColor: !color}
	}

	if err := cfg.Save(*path, c); err != nil {
		return err
	}
	fmt.Println("Wrote", *path)
	return nil
}

// checkStartValue accepts what a commit in unit would keep unchanged.
func checkStartValue(unit, raw string) error {
	u, err := value.ParseUnit(unit)
	if err != nil {
		return err
	}
	v, ok := value.Extract(raw)
	if !ok {
		return errors.New("enter a number such as 12 or 12,5")
	}
	r := value.Round9(v)
	if r < 0 {
		return errors.New("value must be 0 or more")
	}
	if !u.InRange(r) {
		return fmt.Errorf("value must be at most %s for %s", value.Format(u.Max()), u)
	}
	return nil
}
