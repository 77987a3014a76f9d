package main

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/routinegen/internal/collector"
	"github.com/myrjola/routinegen/internal/errors"
	"github.com/myrjola/routinegen/internal/i18n"
	"github.com/myrjola/routinegen/internal/logging"
	"github.com/myrjola/routinegen/internal/random"
	"github.com/myrjola/routinegen/internal/render"
	"github.com/myrjola/routinegen/internal/testhelpers"
	"github.com/myrjola/routinegen/internal/workout"
)

func lookupEnvFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func runWith(t *testing.T, input string, env map[string]string) (string, error) {
	t.Helper()
	var (
		stdout   bytes.Buffer
		logLevel slog.LevelVar
	)
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	err := run(t.Context(), logger, &logLevel, strings.NewReader(input), &stdout, lookupEnvFrom(env))
	return stdout.String(), err
}

// parseDays splits text output into weekday labels and the exercise minutes listed under each.
func parseDays(t *testing.T, out string) ([]string, map[string]map[string]int) {
	t.Helper()
	var (
		labels  []string
		days    = map[string]map[string]int{}
		current string
	)
	for _, line := range strings.Split(out, "\n") {
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			current = strings.TrimSuffix(line, ":")
			labels = append(labels, current)
			days[current] = map[string]int{}
			continue
		}
		if current == "" || !strings.HasSuffix(line, " min") {
			continue
		}
		i := strings.LastIndex(line, ": ")
		minutes, err := strconv.Atoi(strings.TrimSuffix(line[i+2:], " min"))
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		name := line[:i]
		if _, dup := days[current][name]; dup {
			t.Errorf("%s lists %q twice", current, name)
		}
		days[current][name] = minutes
	}
	return labels, days
}

func TestRun_BeginnerThreeDays(t *testing.T) {
	input := strings.Join([]string{"80", "1.8", "75", "3", "1", "1", "3", "30", "2000"}, "\n") + "\n"
	out, err := runWith(t, input, map[string]string{"ROUTINEGEN_SEED": "7"})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	labels, days := parseDays(t, out)
	if diff := cmp.Diff([]string{"Monday", "Tuesday", "Wednesday"}, labels); diff != "" {
		t.Fatalf("weekday labels mismatch (-want +got):\n%s", diff)
	}
	for _, label := range labels {
		total := 0
		for name, minutes := range days[label] {
			if !workout.InCatalog(workout.LevelBeginner, name) {
				t.Errorf("%s: %q is not a beginner exercise", label, name)
			}
			total += minutes
		}
		if len(days[label]) != 0 && total != 30 {
			t.Errorf("%s totals %d min, want 30", label, total)
		}
	}
	if n := strings.Count(out, render.Separator); n != 6+3 {
		t.Errorf("got %d separators, want 9", n)
	}
}

func TestRun_SevenDaysInCalendarOrder(t *testing.T) {
	input := strings.Join([]string{"180", "6", "170", "1", "3", "3", "7", "15", "2500"}, "\n") + "\n"
	out, err := runWith(t, input, map[string]string{"ROUTINEGEN_SEED": "99"})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	labels, _ := parseDays(t, out)
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("weekday labels mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	input := strings.Join([]string{"80", "1.8", "75", "3", "2", "2", "5", "45", "2000"}, "\n") + "\n"
	env := map[string]string{"ROUTINEGEN_SEED": "12345"}
	first, err := runWith(t, input, env)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	second, err := runWith(t, input, env)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different output (-first +second):\n%s", diff)
	}
}

func TestRun_HTML(t *testing.T) {
	input := strings.Join([]string{"80", "1.8", "75", "3", "1", "2", "2", "60", "2000"}, "\n") + "\n"
	out, err := runWith(t, input, map[string]string{"ROUTINEGEN_SEED": "3", "ROUTINEGEN_FORMAT": "html"})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	// The document follows the last prompt on stdout.
	i := strings.Index(out, "<h1>")
	if i < 0 {
		t.Fatalf("no html in output %q", out)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out[i:]))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var headings []string
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Text())
	})
	if diff := cmp.Diff([]string{"Monday", "Tuesday"}, headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Finnish(t *testing.T) {
	input := strings.Join([]string{"80", "1.8", "75", "3", "1", "1", "1", "20", "2000"}, "\n") + "\n"
	out, err := runWith(t, input, map[string]string{"ROUTINEGEN_LANGUAGE": "fi"})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if want := i18n.Translate(i18n.Finnish, i18n.PromptDays); !strings.Contains(out, want) {
		t.Errorf("output does not contain Finnish prompt %q", want)
	}
}

func TestRun_Errors(t *testing.T) {
	valid := strings.Join([]string{"80", "1.8", "75", "3", "1", "1", "3", "30", "2000"}, "\n") + "\n"
	tests := []struct {
		name    string
		input   string
		env     map[string]string
		wantErr error
	}{
		{name: "input closed", input: "80\n", env: nil, wantErr: collector.ErrInputClosed},
		{
			name:    "too many attempts",
			input:   "x\nx\nx\n",
			env:     map[string]string{"ROUTINEGEN_MAX_ATTEMPTS": "2"},
			wantErr: collector.ErrTooManyAttempts,
		},
		{
			name:    "unknown format",
			input:   valid,
			env:     map[string]string{"ROUTINEGEN_FORMAT": "pdf"},
			wantErr: render.ErrUnknownFormat,
		},
		{name: "malformed seed", input: valid, env: map[string]string{"ROUTINEGEN_SEED": "abc"}, wantErr: nil},
		{name: "unknown language", input: valid, env: map[string]string{"ROUTINEGEN_LANGUAGE": "sv"}, wantErr: nil},
		{name: "unknown log level", input: valid, env: map[string]string{"ROUTINEGEN_LOG_LEVEL": "loud"}, wantErr: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runWith(t, tt.input, tt.env)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelDebug)

	err := recoverPanic(func() error {
		random.New(1).Choice(nil)
		return nil
	})
	if err == nil {
		t.Fatal("expected panic to be returned as an error")
	}
	logger.LogAttrs(t.Context(), slog.LevelError, "failure generating routine", errors.SlogError(err))
	for _, want := range []string{"Choice called with no items", "error.stack_trace="} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected log line %q to contain %q", buf.String(), want)
		}
	}

	wantErr := errors.New("plain failure")
	if got := recoverPanic(func() error { return wantErr }); !errors.Is(got, wantErr) {
		t.Errorf("recoverPanic() = %v, want %v", got, wantErr)
	}
	if got := recoverPanic(func() error { return nil }); got != nil {
		t.Errorf("recoverPanic() = %v, want nil", got)
	}
}
