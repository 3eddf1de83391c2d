package fraction

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Print writes "num/den" and a newline to standard output and returns f.
func (f Fraction) Print() Fraction {
	return f.Fprint(os.Stdout)
}

func (f Fraction) Fprint(w io.Writer) Fraction {
	fmt.Fprintln(w, f.String())
	return f
}

// PrintEvaluated writes Evaluate() to standard output with six significant
// digits, so 1/10000 prints as 0.0001 and 10/2 as 5.
func (f Fraction) PrintEvaluated() Fraction {
	return f.FprintEvaluated(os.Stdout)
}

func (f Fraction) FprintEvaluated(w io.Writer) Fraction {
	fmt.Fprintln(w, formatEvaluated(f.Evaluate()))
	return f
}

func formatEvaluated(v float64) string {
	return strconv.FormatFloat(v, 'g', evalPrecision, 64)
}
