// Package collector prompts for the user's measurements and workout preferences on a line based console.
//
// Invalid answers never reach the caller. They are explained and the question is asked again, optionally up to a
// limited number of attempts.
package collector

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/myrjola/routinegen/internal/errors"
	"github.com/myrjola/routinegen/internal/i18n"
)

// Separator is printed before every group of questions.
const Separator = "-----------------------------------"

var (
	// ErrInputClosed is returned when the input ends before a valid answer was given.
	ErrInputClosed = errors.NewSentinel("input closed")
	// ErrTooManyAttempts is returned when the configured attempt limit is reached.
	ErrTooManyAttempts = errors.NewSentinel("too many invalid answers")
)

// Rejection is a recoverable answer error. Key is the i18n message key shown to the user.
type Rejection struct {
	Key string
}

func (r *Rejection) Error() string {
	return "rejected: " + r.Key
}

func reject(key string) error {
	return &Rejection{Key: key}
}

// Config configures a [Collector].
type Config struct {
	// Language of the prompts and messages.
	Language i18n.Language
	// MaxAttempts limits the answers accepted per question. Zero or less retries forever.
	MaxAttempts int
	// Logger receives debug records of rejected answers. Nil discards them.
	Logger *slog.Logger
}

// Collector asks questions on out and reads answers from in.
type Collector struct {
	in          *bufio.Reader
	out         io.Writer
	lang        i18n.Language
	maxAttempts int
	logger      *slog.Logger
}

// New creates a Collector reading answers line by line from in.
func New(in io.Reader, out io.Writer, cfg Config) *Collector {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	lang := cfg.Language
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLanguage
	}
	return &Collector{
		in:          bufio.NewReader(in),
		out:         out,
		lang:        lang,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger,
	}
}

func (c *Collector) t(key string) string {
	return i18n.Translate(c.lang, key)
}

func (c *Collector) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// ask prints the prompt and reads one line of any length without the line ending.
func (c *Collector) ask(promptKey string) (string, error) {
	if _, err := fmt.Fprint(c.out, c.t(promptKey)); err != nil {
		return "", errors.Wrap(err, "write prompt", slog.String("prompt", promptKey))
	}
	line, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// Last answer without a trailing newline.
	case errors.Is(err, io.EOF):
		return "", errors.Wrap(ErrInputClosed, "read answer", slog.String("prompt", promptKey))
	default:
		return "", errors.Wrap(err, "read answer", slog.String("prompt", promptKey))
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// retry calls attempt until it succeeds. Rejections are shown to the user and retried, other errors are returned.
func retry[T any](c *Collector, question string, attempt func() (T, error)) (T, error) {
	var zero T
	for n := 1; ; n++ {
		v, err := attempt()
		if err == nil {
			return v, nil
		}
		var rejection *Rejection
		if !errors.As(err, &rejection) {
			return zero, err
		}
		c.println(c.t(rejection.Key))
		c.logger.Debug("answer rejected",
			slog.String("question", question),
			slog.Int("attempt", n),
			slog.String("reason", rejection.Key))
		if c.maxAttempts > 0 && n >= c.maxAttempts {
			c.println(c.t(i18n.ErrTooManyAttempts))
			return zero, errors.Wrap(ErrTooManyAttempts, "collect answer",
				slog.String("question", question), slog.Int("attempts", n))
		}
	}
}

// ReadValidated asks the prompt until the answer parses and validates.
// Parse and validate should return a [*Rejection] for answers the user can correct.
func ReadValidated[T any](
	c *Collector,
	promptKey string,
	parse func(string) (T, error),
	validate func(T) error,
) (T, error) {
	return retry(c, promptKey, func() (T, error) {
		var zero T
		line, err := c.ask(promptKey)
		if err != nil {
			return zero, err
		}
		v, err := parse(line)
		if err != nil {
			return zero, err
		}
		if validate != nil {
			if err = validate(v); err != nil {
				return zero, err
			}
		}
		return v, nil
	})
}

// ParseInt parses a whole number allowing surrounding whitespace.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, reject(i18n.ErrNumber)
	}
	return v, nil
}

// parseFloat parses a finite real number allowing surrounding whitespace.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, reject(i18n.ErrNumbers)
	}
	return v, nil
}

func between(lo, hi int, key string) func(int) error {
	return func(v int) error {
		if v < lo || v > hi {
			return reject(key)
		}
		return nil
	}
}

func positive(v int) error {
	if v <= 0 {
		return reject(i18n.ErrPositiveNumber)
	}
	return nil
}
