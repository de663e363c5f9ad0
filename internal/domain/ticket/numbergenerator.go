package ticket

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const numberPrefix = "TKT-"

type NumberGenerator interface {
	Generate(ctx context.Context, existing []*Ticket) (string, error)
}

// FormatNumber renders a sequence value as TKT-NNN (at least three digits).
func FormatNumber(seq int) string {
	return fmt.Sprintf("%s%03d", numberPrefix, seq)
}

// ParseNumber extracts the sequence value from a TKT-NNN label.
func ParseNumber(number string) (int, bool) {
	digits, ok := strings.CutPrefix(number, numberPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// HighestNumber returns the largest sequence value in use, or 0.
func HighestNumber(tickets []*Ticket) int {
	highest := 0
	for _, t := range tickets {
		if n, ok := ParseNumber(t.Number()); ok && n > highest {
			highest = n
		}
	}
	return highest
}

// SequenceNumberGenerator issues numbers from a persisted counter, so a
// number is never reused even when the collection shrinks.
type SequenceNumberGenerator struct {
	seq SequenceRepository
}

func NewSequenceNumberGenerator(seq SequenceRepository) *SequenceNumberGenerator {
	return &SequenceNumberGenerator{seq: seq}
}

func (g *SequenceNumberGenerator) Generate(ctx context.Context, existing []*Ticket) (string, error) {
	next, err := g.seq.Next(ctx, HighestNumber(existing))
	if err != nil {
		return "", fmt.Errorf("failed to allocate ticket number: %w", err)
	}
	return FormatNumber(next), nil
}
