package depstub

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Report describes one invocation of an unimplemented endpoint
type Report struct {
	Interface string
	Endpoint  string
	CallSite  string // file:line of the invoking frame, "" when unavailable
}

// String formats the report the way the default reporter prints it
func (r Report) String() string {
	if r.CallSite == "" {
		return fmt.Sprintf("unimplemented endpoint %s.%s invoked", r.Interface, r.Endpoint)
	}
	return fmt.Sprintf("unimplemented endpoint %s.%s invoked at %s", r.Interface, r.Endpoint, r.CallSite)
}

// Reporter receives unimplemented-endpoint reports. Implementations must be
// safe for concurrent use: a concurrent test run can exercise many
// unimplemented endpoints at once.
type Reporter interface {
	ReportUnimplemented(report Report)
}

var (
	reporterMu sync.RWMutex
	reporter   Reporter = &stderrReporter{}
)

// SetReporter swaps the process-wide reporter and returns a restore
// function for the previous one
func SetReporter(r Reporter) (restore func()) {
	reporterMu.Lock()
	previous := reporter
	reporter = r
	reporterMu.Unlock()

	return func() {
		reporterMu.Lock()
		reporter = previous
		reporterMu.Unlock()
	}
}

// ReportUnimplemented is called by every synthesized default before it
// fails or fabricates a value. It observes and returns; it never panics and
// never aborts the caller.
func ReportUnimplemented(ifaceName, endpointName string) {
	report := Report{
		Interface: ifaceName,
		Endpoint:  endpointName,
		CallSite:  callSite(),
	}

	reporterMu.RLock()
	r := reporter
	reporterMu.RUnlock()

	r.ReportUnimplemented(report)
}

// callSite walks past this package and the generated frames to the frame
// that invoked the unimplemented endpoint. The generated closure always
// sits directly above ReportUnimplemented; a label-preserving wrapper adds
// one more frame in the same generated file, so frames from *_depstub.go
// files are skipped rather than counted.
func callSite() string {
	var pcs [8]uintptr
	// skip runtime.Callers, callSite, ReportUnimplemented
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !strings.HasSuffix(frame.File, "_depstub.go") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}

// stderrReporter is the default reporter outside tests
type stderrReporter struct {
	mu sync.Mutex
}

func (s *stderrReporter) ReportUnimplemented(report Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	warn := color.New(color.FgRed, color.Bold)
	warn.Fprint(os.Stderr, "depstub: ")
	fmt.Fprintf(os.Stderr, "%s\n", report)
}

// TB is the subset of testing.TB the test reporter needs
type TB interface {
	Helper()
	Errorf(format string, args ...interface{})
}

// TestReporter routes reports to a test's non-fatal failure channel, so an
// unintended invocation fails the test without stopping it.
func TestReporter(tb TB) Reporter {
	return &testReporter{tb: tb}
}

type testReporter struct {
	tb TB
}

func (t *testReporter) ReportUnimplemented(report Report) {
	t.tb.Helper()
	t.tb.Errorf("%s", report)
}
