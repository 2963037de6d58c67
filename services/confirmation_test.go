package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(prompt string) (string, error) {
	return s.text, s.err
}

func TestDefaultConfirmation_IncludesDetails(t *testing.T) {
	msg := DefaultConfirmation("Ana", "2025-06-10", "09:00")
	assert.Contains(t, msg, "Ana")
	assert.Contains(t, msg, "10/06/2025")
	assert.Contains(t, msg, "09:00")
}

func TestConfirmation_NoGeneratorUsesDefault(t *testing.T) {
	msg := Confirmation(nil, "Ana", "2025-06-10", "09:00")
	assert.Equal(t, DefaultConfirmation("Ana", "2025-06-10", "09:00"), msg)
}

func TestConfirmation_GeneratorFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	msg := Confirmation(gen, "Ana", "2025-06-10", "09:00")
	assert.Equal(t, DefaultConfirmation("Ana", "2025-06-10", "09:00"), msg)
	assert.NotEmpty(t, msg)
}

func TestConfirmation_EmptyGeneratorOutputFallsBack(t *testing.T) {
	gen := &stubGenerator{text: "   "}
	msg := Confirmation(gen, "Ana", "2025-06-10", "09:00")
	assert.Equal(t, DefaultConfirmation("Ana", "2025-06-10", "09:00"), msg)
}

func TestConfirmation_GeneratorOutputWins(t *testing.T) {
	gen := &stubGenerator{text: "Ana, que alegria receber você!"}
	msg := Confirmation(gen, "Ana", "2025-06-10", "09:00")
	assert.Equal(t, "Ana, que alegria receber você!", msg)
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "10/06/2025", FormatDateBR("2025-06-10"))
	assert.Equal(t, "01/03/2025", FormatDateBR("2025-03-01"))
	assert.Equal(t, "not-a-date", FormatDateBR("not-a-date"))
}
