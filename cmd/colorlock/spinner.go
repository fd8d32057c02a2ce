package main

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/nrgrid/colorlock/cli/clilog"
)

// uiSpinner wraps github.com/briandowns/spinner so it never runs under
// --verbose, where its redraws would interleave badly with log lines.
type uiSpinner struct {
	s *spinner.Spinner
}

func newSpinner(msg string) *uiSpinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &uiSpinner{s: s}
}

func (u *uiSpinner) Start() {
	if !clilog.VerboseEnabled {
		u.s.Start()
	}
}

func (u *uiSpinner) Stop() {
	u.s.Stop()
}
