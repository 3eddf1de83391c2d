package fraction

// Arithmetic never modifies its operands. Every result is reduced. Products
// wider than 64 bits wrap.

func (f Fraction) AddInt(n int64) Fraction {
	return Fraction{num: f.num + n*f.den, den: f.den}.Reduce()
}

func (f Fraction) Add(b Fraction) Fraction {
	return Fraction{
		num: f.num*b.den + b.num*f.den,
		den: f.den * b.den,
	}.Reduce()
}

func (f Fraction) SubInt(n int64) Fraction {
	return Fraction{num: f.num - n*f.den, den: f.den}.Reduce()
}

func (f Fraction) Sub(b Fraction) Fraction {
	return Fraction{
		num: f.num*b.den - b.num*f.den,
		den: f.den * b.den,
	}.Reduce()
}

func (f Fraction) MulInt(n int64) Fraction {
	return Fraction{num: f.num * n, den: f.den}.Reduce()
}

func (f Fraction) Mul(b Fraction) Fraction {
	return Fraction{num: f.num * b.num, den: f.den * b.den}.Reduce()
}

// DivInt returns ErrDivideByZero if n is zero.
func (f Fraction) DivInt(n int64) (Fraction, error) {
	if n == 0 {
		return Fraction{}, ErrDivideByZero
	}
	return Fraction{num: f.num, den: f.den * n}.Reduce(), nil
}

// Div returns ErrDivideByZero if b has a zero numerator, the same as DivInt
// does for a zero integer.
func (f Fraction) Div(b Fraction) (Fraction, error) {
	if b.num == 0 {
		return Fraction{}, ErrDivideByZero
	}
	return Fraction{num: f.num * b.den, den: f.den * b.num}.Reduce(), nil
}
