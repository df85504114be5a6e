package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestLogger(verbose, debug bool) (Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Logger{Verbose: verbose, Debug: debug, Out: &out, Err: &errOut}, &out, &errOut
}

func TestLoggerVerbosity(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name        string
		verbose     bool
		debug       bool
		wantInfo    bool
		wantDebug   bool
		wantWarn    bool
		wantErrorLn bool
	}{
		{"Quiet", false, false, false, false, false, false},
		{"Verbose", true, false, true, false, true, false},
		{"Debug", false, true, true, true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, out, errOut := newTestLogger(tc.verbose, tc.debug)

			l.Infof("info %d", 1)
			l.Debugf("debug %d", 2)
			l.Warnf("warn %d", 3)
			l.Errorf("error %d", 4)

			if got := strings.Contains(out.String(), "[info] info 1"); got != tc.wantInfo {
				t.Errorf("info shown = %t, want %t", got, tc.wantInfo)
			}
			if got := strings.Contains(out.String(), "[debug] debug 2"); got != tc.wantDebug {
				t.Errorf("debug shown = %t, want %t", got, tc.wantDebug)
			}
			if got := strings.Contains(errOut.String(), "[warn] warn 3"); got != tc.wantWarn {
				t.Errorf("warn shown = %t, want %t", got, tc.wantWarn)
			}
			if got := strings.Contains(errOut.String(), "[error] error 4"); got != tc.wantErrorLn {
				t.Errorf("error shown = %t, want %t", got, tc.wantErrorLn)
			}
		})
	}
}

func TestWarnfAlways(t *testing.T) {
	color.NoColor = true
	l, _, errOut := newTestLogger(false, false)

	l.WarnfAlways("disk %s", "full")

	if !strings.Contains(errOut.String(), "[warn] disk full") {
		t.Errorf("Expected warning regardless of verbosity, got %q", errOut.String())
	}
}

func TestErrorfAndReturn(t *testing.T) {
	color.NoColor = true
	l, _, _ := newTestLogger(false, false)

	err := l.ErrorfAndReturn("failed to read %s", "config.ac.es")
	if err == nil || err.Error() != "failed to read config.ac.es" {
		t.Errorf("Expected returned error, got %v", err)
	}
}
