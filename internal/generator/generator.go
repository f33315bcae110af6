// Package generator builds random passwords from a set of character classes.
package generator

import (
	"math/rand/v2"
	"strings"
)

// Class is a category of characters that can be enabled for generation.
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Digit
	Special
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+~`|}{[]:;?><,./-="
)

// Alphabet returns the fixed, ordered characters of the class.
func (c Class) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Special:
		return specialChars
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Options configures a single generation request.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Special   bool
}

// DefaultOptions returns 12 characters with every class enabled.
func DefaultOptions() Options {
	return Options{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Special:   true,
	}
}

// Classes returns the enabled classes in alphabet concatenation order.
func (o Options) Classes() []Class {
	var classes []Class
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Digits {
		classes = append(classes, Digit)
	}
	if o.Special {
		classes = append(classes, Special)
	}
	return classes
}

// Charset returns the union alphabet of the enabled classes.
func (o Options) Charset() string {
	var sb strings.Builder
	for _, c := range o.Classes() {
		sb.WriteString(c.Alphabet())
	}
	return sb.String()
}

// Source supplies uniform random indexes in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Result is the outcome of a generation.
type Result struct {
	Password string
	// Options is the effective request. When no class was enabled it has
	// Lowercase switched on so callers can reflect the substitution.
	Options   Options
	Defaulted bool
}

// Generator draws passwords from a Source.
type Generator struct {
	src Source
}

// New returns a Generator backed by the process-wide math/rand/v2 source.
func New() *Generator {
	return &Generator{src: globalSource{}}
}

// NewWithSource returns a Generator that draws from src.
func NewWithSource(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Generate draws opts.Length characters independently and uniformly, with
// replacement, from the union alphabet of the enabled classes. It never
// fails: a non-positive length gives an empty password and an empty class
// selection falls back to lowercase letters.
func (g *Generator) Generate(opts Options) Result {
	res := Result{Options: opts}

	charset := opts.Charset()
	if charset == "" {
		charset = lowercaseChars
		res.Options.Lowercase = true
		res.Defaulted = true
	}

	if opts.Length <= 0 {
		return res
	}

	var sb strings.Builder
	sb.Grow(opts.Length)
	for i := 0; i < opts.Length; i++ {
		sb.WriteByte(charset[g.src.IntN(len(charset))])
	}
	res.Password = sb.String()

	return res
}
