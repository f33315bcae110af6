package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/strength"
)

// ErrLengthTooLong is returned when a request asks for more than the maximum length.
var ErrLengthTooLong = errors.New("password length too long")

// GeneratorService generates passwords and scores them.
type GeneratorService struct {
	gen           *generator.Generator
	defaultLength int
	maxLength     int
}

// NewGeneratorService creates a new GeneratorService. defaultLength is used
// when a request omits the length; longer than maxLength is rejected.
func NewGeneratorService(gen *generator.Generator, defaultLength, maxLength int) *GeneratorService {
	return &GeneratorService{gen: gen, defaultLength: defaultLength, maxLength: maxLength}
}

// Generate produces a password for the request and scores it. Omitted class
// flags are enabled. Non-positive lengths give an empty password; the only
// error is ErrLengthTooLong.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := intOrDefault(req.Length, s.defaultLength)
	if length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w: must be at most %d", ErrLengthTooLong, s.maxLength)
	}

	opts := generator.Options{
		Length:    length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Numbers, true),
		Special:   boolOrDefault(req.Symbols, true),
	}

	res := s.gen.Generate(opts)

	return model.GenerateResponse{
		Password:  res.Password,
		Length:    len(res.Password),
		Uppercase: res.Options.Uppercase,
		Lowercase: res.Options.Lowercase,
		Numbers:   res.Options.Digits,
		Symbols:   res.Options.Special,
		Defaulted: res.Defaulted,
		Strength:  Assess(res.Password),
	}, nil
}

// Assess scores an arbitrary password.
func Assess(password string) model.StrengthResponse {
	a := strength.Score(password)
	return model.StrengthResponse{Assessment: a, Color: a.Tier.Color()}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
