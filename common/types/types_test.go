package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountArithmetic(t *testing.T) {
	price := MustAmount("100")
	pct := MustAmount("10")

	product, err := price.Mul(pct)
	require.NoError(t, err)
	royalty, err := product.Quo(NewAmount(100, 0))
	require.NoError(t, err)
	assert.Equal(t, "10", royalty.String())

	rest, err := price.Sub(royalty)
	require.NoError(t, err)
	assert.Equal(t, "90", rest.String())

	sum, err := rest.Add(royalty)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Cmp(price))

	_, err = price.Quo(Amount{})
	assert.Error(t, err)
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "0", Amount{}.String())
	assert.Equal(t, "12.5", MustAmount("12.500").String())
	assert.Equal(t, "1000", MustAmount("1E+3").String())
	assert.Equal(t, "-3.25", MustAmount("-3.25").String())
}

func TestAmountParse(t *testing.T) {
	_, err := ParseAmount("abc")
	assert.Error(t, err)
	_, err = ParseAmount("NaN")
	assert.Error(t, err)
	a, err := ParseAmount("0.000001")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Sign())

	_, err = ParseAmount("0.000000000000000001")
	assert.NoError(t, err)
	_, err = ParseAmount("0.0000000000000000001")
	assert.Error(t, err, "finer than the column scale")
	_, err = ParseAmount("1.5000000000000000000000")
	assert.NoError(t, err, "trailing zeros do not count")
}

func TestAmountPercent(t *testing.T) {
	r, err := MustAmount("100").Percent(MustAmount("7.5"))
	require.NoError(t, err)
	assert.Equal(t, "7.5", r.String())

	r, err = MustAmount("0.000000000000000001").Percent(MustAmount("50"))
	require.NoError(t, err)
	assert.True(t, r.IsZero(), "rounded down to the stored scale")

	r, err = MustAmount("123456789012345678.123456789012345678").Percent(MustAmount("12.345678901234567891"))
	require.NoError(t, err)
	assert.Equal(t, "15241578753238836.655555556519753087", r.String())
}

func TestAmountJSON(t *testing.T) {
	in := struct {
		Price Amount `json:"price"`
	}{Price: MustAmount("42.10")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":42.1}`, string(data))

	var out struct {
		Price Amount `json:"price"`
		Quote Amount `json:"quote"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":7.5,"quote":"3"}`), &out))
	assert.Equal(t, "7.5", out.Price.String())
	assert.Equal(t, "3", out.Quote.String())
}

func TestAmountScan(t *testing.T) {
	var a Amount
	require.NoError(t, a.Scan(int64(5)))
	assert.Equal(t, "5", a.String())
	require.NoError(t, a.Scan([]byte("1.25")))
	assert.Equal(t, "1.25", a.String())
	require.NoError(t, a.Scan("9"))
	assert.Equal(t, "9", a.String())
	require.NoError(t, a.Scan(nil))
	assert.True(t, a.IsZero())
	assert.Error(t, a.Scan(true))

	v, err := MustAmount("3.50").Value()
	require.NoError(t, err)
	assert.Equal(t, "3.5", v)
}
