package utils

import "strings"

// NormalizeCPF reduces a CPF to its digits so formatted and unformatted
// inputs compare equal ("026.711.533-41" == "02671153341").
func NormalizeCPF(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
