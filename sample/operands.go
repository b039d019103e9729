package sample

const maxOperand = 1000

// Operands is one dividend/divisor pair.
type Operands struct {
	Dividend float64
	Divisor  float64
}

// NewOperands returns a random pair. About a quarter of the pairs have a
// zero divisor, half of those a zero dividend too.
func NewOperands() Operands {
	if rand4() == 0 {
		return NewZeroDivisor()
	}
	return NewNonZeroDivisor()
}

// NewZeroDivisor returns a pair whose divisor is zero.
func NewZeroDivisor() Operands {
	dividend := 0
	if randomBool() {
		dividend = randomNonZeroInt(-maxOperand, maxOperand)
	}
	return Operands{Dividend: float64(dividend), Divisor: 0}
}

// NewNonZeroDivisor returns a pair that always divides, the dividend may be
// zero.
func NewNonZeroDivisor() Operands {
	return Operands{
		Dividend: float64(randomInt(-maxOperand, maxOperand)),
		Divisor:  float64(randomNonZeroInt(-maxOperand, maxOperand)),
	}
}

// NewOperandsList returns n random pairs.
func NewOperandsList(n int) []Operands {
	list := make([]Operands, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, NewOperands())
	}
	return list
}

func rand4() int {
	return randomInt(0, 3)
}
