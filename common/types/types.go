package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Scale fractional digits kept by the numeric(36,18) money columns
const Scale = 18

// decimal context shared by all money arithmetic, wide enough that sums of
// two stored values are exact
var moneyCtx = apd.BaseContext.WithPrecision(40)

// percentCtx takes the full product of a stored amount and a percentage
var percentCtx = apd.BaseContext.WithPrecision(80)

// Amount is a money value (balances, prices, royalties) backed by an arbitrary
// precision decimal. The zero value is 0.
type Amount struct {
	d apd.Decimal
}

// NewAmount returns coeff * 10^exp
func NewAmount(coeff int64, exp int32) Amount {
	var a Amount
	a.d.SetFinite(coeff, exp)
	return a
}

// ParseAmount parses a decimal string such as "12.5"
func ParseAmount(s string) (Amount, error) {
	var a Amount
	if _, _, err := a.d.SetString(s); err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if a.d.Form != apd.Finite {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	var r apd.Decimal
	r.Reduce(&a.d)
	if r.Exponent < -Scale {
		return Amount{}, fmt.Errorf("invalid amount %q: more than %d decimal places", s, Scale)
	}
	return a, nil
}

// MustAmount is ParseAmount that panics, for constants and tests
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) (Amount, error) {
	var r Amount
	_, err := moneyCtx.Add(&r.d, &a.d, &b.d)
	return r, err
}

func (a Amount) Sub(b Amount) (Amount, error) {
	var r Amount
	_, err := moneyCtx.Sub(&r.d, &a.d, &b.d)
	return r, err
}

func (a Amount) Mul(b Amount) (Amount, error) {
	var r Amount
	_, err := moneyCtx.Mul(&r.d, &a.d, &b.d)
	return r, err
}

func (a Amount) Quo(b Amount) (Amount, error) {
	var r Amount
	if b.IsZero() {
		return r, fmt.Errorf("division by zero")
	}
	_, err := moneyCtx.Quo(&r.d, &a.d, &b.d)
	return r, err
}

// Percent returns a * pct / 100 rounded down to Scale decimal places
func (a Amount) Percent(pct Amount) (Amount, error) {
	var product, r Amount
	if _, err := percentCtx.Mul(&product.d, &a.d, &pct.d); err != nil {
		return r, err
	}
	product.d.Exponent -= 2
	floor := *percentCtx
	floor.Rounding = apd.RoundDown
	if _, err := floor.Quantize(&r.d, &product.d, -Scale); err != nil {
		return r, err
	}
	return r, nil
}

// Cmp compares a and b and returns -1, 0 or +1
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(&b.d)
}

func (a Amount) Sign() int {
	return a.d.Sign()
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// String formats without exponent, trailing zeros removed
func (a Amount) String() string {
	var r apd.Decimal
	r.Reduce(&a.d)
	if r.Exponent > 0 {
		moneyCtx.Quantize(&r, &r, 0)
	}
	return r.Text('f')
}

// Float64 is for aggregate statistics only, never for settlement
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

// Value stores the amount as a decimal string, numeric columns accept it on every dialect
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		a.d.SetInt64(0)
		return nil
	case int64:
		a.d.SetInt64(v)
		return nil
	case float64:
		_, err := a.d.SetFloat64(v)
		return err
	case []byte:
		_, _, err := a.d.SetString(string(v))
		return err
	case string:
		_, _, err := a.d.SetString(v)
		return err
	default:
		return fmt.Errorf("cannot scan %T into Amount", src)
	}
}

// GormDataType column type used by AutoMigrate
func (Amount) GormDataType() string {
	return "numeric(36,18)"
}

// MarshalJSON renders a JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string
func (a *Amount) UnmarshalJSON(input []byte) error {
	s := string(input)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a *Amount) UnmarshalText(input []byte) error {
	return a.UnmarshalParam(string(input))
}

// UnmarshalParam lets gin bind amounts from query and form values
func (a *Amount) UnmarshalParam(param string) error {
	v, err := ParseAmount(param)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
