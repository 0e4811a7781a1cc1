package msp430

// ConstantGeneratorActive reports whether (source, as) addresses one of
// the six hard-coded immediates instead of reading source through the
// register file. R2 (SR/CG1) is active for as in {10b, 11b}; R3 (CG2) is
// active for every as value.
func ConstantGeneratorActive(source uint8, asFlag uint8) bool {
	return (source == RegSR && asFlag > 0b01) || source == RegCG2
}

// RunConstantGenerator synthesizes the constant for an active (source, as)
// pair. Callers must check ConstantGeneratorActive first; an unrecognized
// pair returns ErrInvalidConstantGenerator and a zero value.
func RunConstantGenerator(source uint8, asFlag uint8) (int16, error) {
	switch source {
	case RegSR:
		switch asFlag {
		case 0b10:
			return 4, nil
		case 0b11:
			return 8, nil
		}
	case RegCG2:
		switch asFlag {
		case 0b00:
			return 0, nil
		case 0b01:
			return 1, nil
		case 0b10:
			return 2, nil
		case 0b11:
			return -1, nil
		}
	}
	return 0, &ErrInvalidConstantGenerator{Source: source, AsFlag: asFlag}
}
