package ticket

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateTicketNumber produces the 9-digit display reference assigned at
// creation. It is a display identity, not a key; collisions are tolerated
// and never checked.
func GenerateTicketNumber() (string, error) {
	max := big.NewInt(1_000_000_000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket number: %w", err)
	}
	return fmt.Sprintf("%09d", n.Int64()), nil
}
