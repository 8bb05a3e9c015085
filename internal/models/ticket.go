package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TicketFormat describes how human-readable ticket numbers are built: a fixed
// prefix plus a zero-padded sequence number ("RNT0001", "SRV0012"). The
// format comes from configuration and is passed in explicitly wherever
// numbering happens.
type TicketFormat struct {
	Prefix string
	Width  int
}

// Next returns the ticket number following the highest numeric suffix found
// among the given ticket numbers. Numbers with a different prefix or a
// non-numeric suffix are ignored. With no usable number the sequence starts
// at 1.
func (f TicketFormat) Next(existing []string) string {
	highest := 0
	for _, nr := range existing {
		if !strings.HasPrefix(nr, f.Prefix) {
			continue
		}
		n, err := strconv.Atoi(nr[len(f.Prefix):])
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, highest+1)
}
