package logging

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type Logger = zerolog.Logger

// SetupGlobalLogger applies level to every logger and points the zerolog global logger at stderr.
func SetupGlobalLogger(component string, level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	log.Logger = NewLogger(component)
	return nil
}

// NewLogger writes to stderr. The node's stdout carries only operator-facing lines
// and the output of the external executable.
func NewLogger(component string) Logger {
	return NewLoggerTo(os.Stderr, component)
}

func NewLoggerTo(out io.Writer, component string) Logger {
	noColor := !colorEnabled(out)
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldComponent,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{FieldComponent},
		FormatPrepare: componentFormatter(noColor),
		NoColor:       noColor,
	}).
		With().
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

// colorEnabled is true for terminals unless NO_COLOR is set.
func colorEnabled(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := out.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(file.Fd()))
}

// componentFormatter renders the component part as a bold "[component]" column.
// Other field values keep the default formatting.
func componentFormatter(noColor bool) func(map[string]any) error {
	bold := color.New(color.Bold)
	if noColor {
		bold.DisableColor()
	} else {
		bold.EnableColor()
	}
	return func(event map[string]any) error {
		if component, ok := event[FieldComponent]; ok {
			event[FieldComponent] = bold.Sprintf("[%v]\t", component)
		}
		return nil
	}
}
