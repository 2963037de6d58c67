package services

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// DefaultConfirmation is the fixed confirmation sentence shown to the
// customer when no generator is configured or the generator fails.
func DefaultConfirmation(name, date, timeOfDay string) string {
	return fmt.Sprintf(
		"Obrigada por agendar conosco, %s! Seu horário está confirmado para %s às %s. Enviaremos um lembrete um dia antes. Até breve! 💅✨",
		name, FormatDateBR(date), timeOfDay,
	)
}

// Confirmation returns the booking confirmation message, personalized by the
// generator when one is available. It always returns a non-empty string.
func Confirmation(gen MessageGenerator, name, date, timeOfDay string) string {
	message := DefaultConfirmation(name, date, timeOfDay)
	if gen == nil {
		return message
	}

	personalized, err := gen.Generate(confirmationPrompt(name, date, timeOfDay))
	if err != nil {
		log.Printf("[Confirmation] Generator failed, using default message: %v", err)
		return message
	}
	if strings.TrimSpace(personalized) == "" {
		return message
	}
	return personalized
}

// FormatDateBR renders an ISO date as dd/mm/yyyy. Unparseable input is
// returned as-is.
func FormatDateBR(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

func confirmationPrompt(name, date, timeOfDay string) string {
	return fmt.Sprintf(`Crie uma mensagem calorosa, carinhosa e elogiosa para %s que acabou de agendar um horário no Espaço LK para fazer as unhas no dia %s às %s. A mensagem deve:
- Agradecer pela confiança
- Fazer um elogio sincero e personalizado
- Transmitir carinho e acolhimento
- Ser breve (máximo 3 frases)
- Ter um tom profissional mas afetuoso
- Mencionar que enviaremos um lembrete um dia antes`,
		name, FormatDateBR(date), timeOfDay)
}
