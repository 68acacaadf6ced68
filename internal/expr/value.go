package expr

import (
	"math"
	"math/big"
	"strconv"
)

// Value is the result of an evaluation. Integer literals combined with + - *
// stay exact integers; a decimal literal or a division makes the value a float.
type Value struct {
	integer *big.Int
	float   float64
}

func intValue(i *big.Int) Value {
	return Value{integer: i}
}

func floatValue(f float64) Value {
	return Value{float: f}
}

// IsInt reports whether the value is integer-typed.
func (v Value) IsInt() bool {
	return v.integer != nil
}

// Int returns a copy of the integer value, or nil for float values.
func (v Value) Int() *big.Int {
	if v.integer == nil {
		return nil
	}
	return new(big.Int).Set(v.integer)
}

// Float converts the value to float64. Integers beyond the float64 range
// return ErrOverflow.
func (v Value) Float() (float64, error) {
	if v.integer == nil {
		return v.float, nil
	}
	f, _ := new(big.Float).SetInt(v.integer).Float64()
	if math.IsInf(f, 0) {
		return 0, ErrOverflow
	}
	return f, nil
}

func (v Value) String() string {
	if v.integer != nil {
		return v.integer.String()
	}
	return strconv.FormatFloat(v.float, 'g', -1, 64)
}

func parseLiteral(text string) (Value, error) {
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			// Out-of-range literals round to ±Inf rather than failing.
			f, err := strconv.ParseFloat(text, 64)
			if err != nil && !math.IsInf(f, 0) {
				return Value{}, err
			}
			return floatValue(f), nil
		}
	}

	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Value{}, strconv.ErrSyntax
	}
	return intValue(i), nil
}

func negate(v Value) Value {
	if v.integer != nil {
		return intValue(new(big.Int).Neg(v.integer))
	}
	return floatValue(-v.float)
}

func add(a, b Value) (Value, error) {
	if a.IsInt() && b.IsInt() {
		return intValue(new(big.Int).Add(a.integer, b.integer)), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x + y })
}

func subtract(a, b Value) (Value, error) {
	if a.IsInt() && b.IsInt() {
		return intValue(new(big.Int).Sub(a.integer, b.integer)), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x - y })
}

func multiply(a, b Value) (Value, error) {
	if a.IsInt() && b.IsInt() {
		return intValue(new(big.Int).Mul(a.integer, b.integer)), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x * y })
}

// divide always yields a float. Integer operands are divided exactly and
// rounded once.
func divide(a, b Value) (Value, error) {
	if a.IsInt() && b.IsInt() {
		if b.integer.Sign() == 0 {
			return Value{}, ErrDivisionByZero
		}
		f, _ := new(big.Rat).SetFrac(a.integer, b.integer).Float64()
		if math.IsInf(f, 0) {
			return Value{}, ErrOverflow
		}
		return floatValue(f), nil
	}

	x, y, err := floats(a, b)
	if err != nil {
		return Value{}, err
	}
	if y == 0 {
		return Value{}, ErrDivisionByZero
	}
	return floatValue(x / y), nil
}

func floatOp(a, b Value, op func(x, y float64) float64) (Value, error) {
	x, y, err := floats(a, b)
	if err != nil {
		return Value{}, err
	}
	return floatValue(op(x, y)), nil
}

func floats(a, b Value) (float64, float64, error) {
	x, err := a.Float()
	if err != nil {
		return 0, 0, err
	}
	y, err := b.Float()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
