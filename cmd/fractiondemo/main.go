package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"rational/src/math/fraction"
)

// This walks through every Fraction operation, printing results to stdout and
// the two rejected operations to the log.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("demo failed")
	}
}

func run(w io.Writer, logger zerolog.Logger) error {
	f1 := fraction.MustNew(10, 2)
	f2 := fraction.MustNew(1, 2)

	f1.Fprint(w)
	f2.Fprint(w)

	if _, err := fraction.New(1, 0); err != nil {
		logger.Error().Err(err).Int64("numerator", 1).Int64("denominator", 0).Msg("construct")
	} else {
		return fmt.Errorf("construct 1/0: expected %w", fraction.ErrZeroDenominator)
	}

	f1.Add(f2).Fprint(w)
	f1.Mul(f2).Fprint(w)

	f1 = f1.Reduce().Fprint(w)
	fmt.Fprintln(w, f1.Evaluate())

	fraction.MustNew(1, 10000).FprintEvaluated(w)

	fraction.MustNew(50, 25).
		Add(fraction.MustNew(100, 25)).
		Mul(fraction.MustNew(2, 1)).
		Add(fraction.MustNew(4, 8)).
		Mul(fraction.MustNew(10, 2)).
		FprintEvaluated(w)

	q, err := fraction.MustNew(10, 5).Div(fraction.MustNew(2, 1))
	if err != nil {
		return fmt.Errorf("divide 10/5 by 2/1: %w", err)
	}
	q.Fprint(w)

	q, err = fraction.MustNew(8, 3).AddInt(2).MulInt(2).DivInt(2)
	if err != nil {
		return fmt.Errorf("divide 28/3 by 2: %w", err)
	}
	q.Fprint(w)

	q, err = fraction.FromInt64(1).DivInt(2)
	if err != nil {
		return fmt.Errorf("divide 1 by 2: %w", err)
	}
	q.MulInt(4).FprintEvaluated(w)

	if _, err := fraction.FromInt64(1).DivInt(0); err != nil {
		logger.Error().Err(err).Int64("divisor", 0).Msg("divide")
	} else {
		return fmt.Errorf("divide 1 by 0: expected %w", fraction.ErrDivideByZero)
	}

	fraction.FromInt64(5).SubInt(2).Sub(fraction.MustNew(2, 3)).Fprint(w)

	return nil
}
