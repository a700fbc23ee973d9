package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	log, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}

type printer struct {
	w       io.Writer
	heading *color.Color
	bullet  *color.Color
}

func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:       w,
		heading: color.New(color.Bold, color.FgCyan),
		bullet:  color.New(color.FgHiBlack),
	}
	if !isTerminal(w) {
		p.heading.DisableColor()
		p.bullet.DisableColor()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) section(title, body string) {
	p.heading.Fprintln(p.w, title)
	if body == "" {
		p.bullet.Fprintln(p.w, "  (none)")
	} else {
		fmt.Fprintf(p.w, "  %s\n", body)
	}
	fmt.Fprintln(p.w)
}

func (p *printer) list(title string, items []string) {
	p.heading.Fprintln(p.w, title)
	for _, item := range items {
		p.bullet.Fprint(p.w, "  - ")
		fmt.Fprintln(p.w, item)
	}
	fmt.Fprintln(p.w)
}
