package msp430

import "strings"

var regNames = [16]string{
	"PC", "SP", "SR", "CG2",
	"R4", "R5", "R6", "R7", "R8", "R9", "R10", "R11", "R12", "R13", "R14", "R15",
}

// RegNumToName renders a register index as its assembly mnemonic: "PC",
// "SP", "SR", "CG2" for 0-3, "R4".."R15" otherwise.
func RegNumToName(n uint8) string {
	if n > 15 {
		return "?"
	}
	return regNames[n]
}

// RegNameToNum parses a register name back to its index. Accepts R0..R15,
// %R0..%R15, PC, SP, SR, CG2, all case-insensitive. The second return
// value is false when s does not name a register.
func RegNameToNum(s string) (uint8, bool) {
	s = strings.TrimPrefix(s, "%")
	switch strings.ToUpper(s) {
	case "PC", "R0":
		return RegPC, true
	case "SP", "R1":
		return RegSP, true
	case "SR", "R2":
		return RegSR, true
	case "CG2", "R3":
		return RegCG2, true
	}
	u := strings.ToUpper(s)
	if !strings.HasPrefix(u, "R") || len(u) < 2 {
		return 0, false
	}
	n, ok := parseRegDigits(u[1:])
	if !ok || n < 4 || n > 15 {
		return 0, false
	}
	return uint8(n), true
}

func parseRegDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
