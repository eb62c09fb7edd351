// Package lol (log of location) is a small levelled logger that prints a high
// precision timestamp and the source location of each print, so that the site
// of a codec failure can be found without a debugger.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{"off", "fatal", "error", "warn", "info", "debug", "trace"}

type (
	// Ln prints lists of interfaces with spaces in between.
	Ln func(a ...any)
	// F prints like fmt.Printf.
	F func(format string, a ...any)
	// S prints a spew.Sdump of its arguments.
	S func(a ...any)
	// C accepts a closure so the message is only built when it will be shown.
	C func(closure func() string)
	// Chk prints the error if it is not nil and returns true in that case.
	Chk func(e error) bool
	// Err builds an error with fmt.Errorf, prints it and returns it.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of printers for one level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the name, ID and colorizer for a log level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

var (
	LevelSpecs = []LevelSpec{
		{Off, "", NoSprint},
		{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
		{Error, "ERR", color.New(color.FgHiRed).Sprint},
		{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
		{Info, "INF", color.New(color.FgHiGreen).Sprint},
		{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
		{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
	}
	// NoTimeStamp suppresses the timestamp, mostly useful for tests.
	NoTimeStamp atomic.Bool

	msgCol = color.New(color.FgBlue).Sprint
)

// NoSprint returns nothing no matter what it is given.
func NoSprint(a ...any) string { return "" }

// Log is a set of log printers for each level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error checkers for each level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of error constructors for each level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles printers, checkers and error constructors.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the most verbose level that will be printed.
var Level atomic.Int32

// Main is the logger the log, chk and errorf packages point at.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLoggers(Info)
}

// SetLoggers sets the log level by number.
func SetLoggers(level int) {
	if level < Off || level > Trace {
		level = Info
	}
	Level.Store(int32(level))
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
}

// GetLogLevel returns the number of a named level, or Info if the name is not
// known.
func GetLogLevel(level string) (i int) {
	for i = range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

// SetLogLevel sets the log level by name.
func SetLogLevel(level string) { SetLoggers(GetLogLevel(level)) }

// JoinStrings joins anything into a string with spaces separating the items.
func JoinStrings(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

func enabled(l int32) bool { return Level.Load() >= l }

func printLine(w io.Writer, l int32, text string) {
	_, _ = fmt.Fprintf(w, "%s%s %s %s\n",
		msgCol(TimeStamper()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns the printers for level l writing to w.
func GetPrinter(l int32, w io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if enabled(l) {
				printLine(w, l, JoinStrings(a...))
			}
		},
		F: func(format string, a ...any) {
			if enabled(l) {
				printLine(w, l, fmt.Sprintf(format, a...))
			}
		},
		S: func(a ...any) {
			if enabled(l) {
				printLine(w, l, spew.Sdump(a...))
			}
		},
		C: func(closure func() string) {
			if enabled(l) {
				printLine(w, l, closure())
			}
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if enabled(l) {
				printLine(w, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			err := fmt.Errorf(format, a...)
			if enabled(l) {
				printLine(w, l, err.Error())
			}
			return err
		},
	}
}

// New creates the printers, checkers and error constructors for all levels,
// writing to w.
func New(w io.Writer) (l *Log, c *Check, errorf *Errorf) {
	l = &Log{
		T: GetPrinter(Trace, w),
		D: GetPrinter(Debug, w),
		I: GetPrinter(Info, w),
		W: GetPrinter(Warn, w),
		E: GetPrinter(Error, w),
		F: GetPrinter(Fatal, w),
	}
	c = &Check{F: l.F.Chk, E: l.E.Chk, W: l.W.Chk, I: l.I.Chk, D: l.D.Chk, T: l.T.Chk}
	errorf = &Errorf{F: l.F.Err, E: l.E.Err, W: l.W.Err, I: l.I.Err, D: l.D.Err, T: l.T.Err}
	return
}

// TimeStamper generates the timestamp for log lines.
func TimeStamper() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ")
}

// GetLoc returns the code location skip frames up the stack.
func GetLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}
