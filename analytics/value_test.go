package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	testCases := []struct {
		description string
		value       Value
		expected    string
	}{
		{description: "String", value: String("youtube"), expected: "youtube"},
		{description: "Int", value: Int(1234), expected: "1234"},
		{description: "Negative Int", value: Int(-5), expected: "-5"},
		{description: "Integral Float", value: Float(20.0), expected: "20.0"},
		{description: "Fractional Float", value: Float(0.5), expected: "0.5"},
		{description: "Small Float", value: Float(0.0001), expected: "1.0E-4"},
		{description: "Large Float", value: Float(1e7), expected: "1.0E7"},
		{description: "Large Float With Fraction", value: Float(12345678.9), expected: "1.23456789E7"},
		{description: "Zero Float", value: Float(0), expected: "0.0"},
		{description: "Negative Zero Float", value: Float(math.Copysign(0, -1)), expected: "-0.0"},
		{description: "NaN", value: Float(math.NaN()), expected: "NaN"},
		{description: "Infinity", value: Float(math.Inf(1)), expected: "Infinity"},
		{description: "True", value: Bool(true), expected: "true"},
		{description: "False", value: Bool(false), expected: "false"},
		{description: "Null", value: Null(), expected: ""},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, test.value.String(), test.description)
	}
}

func TestValueOf(t *testing.T) {
	assert.Equal(t, KindNull, ValueOf(nil).Kind())
	assert.Equal(t, Int(80), ValueOf(80))
	assert.Equal(t, Int(7), ValueOf(uint8(7)))
	assert.Equal(t, Float(20), ValueOf(20.0))
	assert.Equal(t, Float(float64(float32(1.5))), ValueOf(float32(1.5)))
	assert.Equal(t, Bool(true), ValueOf(true))
	assert.Equal(t, String("x"), ValueOf("x"))
	assert.Equal(t, String("[1 2]"), ValueOf([]int{1, 2}))
	assert.Equal(t, Int(3), ValueOf(Int(3)))
}

func TestValueInt64(t *testing.T) {
	testCases := []struct {
		description string
		value       Value
		expected    int64
		ok          bool
	}{
		{description: "Int", value: Int(40), expected: 40, ok: true},
		{description: "Float Truncates", value: Float(40.9), expected: 40, ok: true},
		{description: "Numeric String", value: String(" 120 "), expected: 120, ok: true},
		{description: "Float String", value: String("1.5"), expected: 1, ok: true},
		{description: "Text", value: String("abc"), expected: 0, ok: false},
		{description: "Bool", value: Bool(true), expected: 0, ok: false},
		{description: "Null", value: Null(), expected: 0, ok: false},
		{description: "NaN", value: Float(math.NaN()), expected: 0, ok: false},
	}

	for _, test := range testCases {
		i, ok := test.value.Int64()
		assert.Equal(t, test.expected, i, test.description)
		assert.Equal(t, test.ok, ok, test.description)
	}
}

func TestValueFloat64(t *testing.T) {
	testCases := []struct {
		description string
		value       Value
		expected    float64
		ok          bool
	}{
		{description: "Int", value: Int(40), expected: 40, ok: true},
		{description: "Float", value: Float(2.5), expected: 2.5, ok: true},
		{description: "Float String", value: String(" 0.75 "), expected: 0.75, ok: true},
		{description: "Text", value: String("abc"), expected: 0, ok: false},
		{description: "Bool", value: Bool(true), expected: 0, ok: false},
		{description: "Null", value: Null(), expected: 0, ok: false},
		{description: "Infinity", value: Float(math.Inf(1)), expected: 0, ok: false},
		{description: "NaN String", value: String("NaN"), expected: 0, ok: false},
	}

	for _, test := range testCases {
		f, ok := test.value.Float64()
		assert.Equal(t, test.expected, f, test.description)
		assert.Equal(t, test.ok, ok, test.description)
	}
}

func TestValueBoolean(t *testing.T) {
	testCases := []struct {
		description string
		value       Value
		expected    bool
		ok          bool
	}{
		{description: "True", value: Bool(true), expected: true, ok: true},
		{description: "False", value: Bool(false), expected: false, ok: true},
		{description: "True String", value: String("TRUE"), expected: true, ok: true},
		{description: "False String", value: String("false"), expected: false, ok: true},
		{description: "Other String", value: String("yes"), expected: false, ok: false},
		{description: "Int", value: Int(1), expected: false, ok: false},
	}

	for _, test := range testCases {
		b, ok := test.value.Boolean()
		assert.Equal(t, test.expected, b, test.description)
		assert.Equal(t, test.ok, ok, test.description)
	}
}
