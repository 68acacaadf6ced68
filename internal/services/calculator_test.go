package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geocalc/internal/expr"
	"geocalc/internal/models"
)

func displayWith(text string) *models.Display {
	d := models.NewDisplay()
	d.SetText(text)
	return d
}

func TestAppend(t *testing.T) {
	cs := NewCalculatorService()

	d := displayWith("")
	for _, token := range []string{"1", "2", "+", "3", DivideGlyph} {
		cs.Append(d, token)
	}
	assert.Equal(t, "12+3÷", d.Text())

	d = displayWith(models.ErrorText)
	cs.Append(d, "7")
	assert.Equal(t, "7", d.Text())
}

func TestClear(t *testing.T) {
	cs := NewCalculatorService()
	d := displayWith("12+3")
	cs.Clear(d)
	assert.Empty(t, d.Text())
}

func TestDeleteLast(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{models.ErrorText, ""},
		{"123", "12"},
		{"", ""},
		{"8" + DivideGlyph, "8"},
		{"Invalid input!", "Invalid input"},
	}

	cs := NewCalculatorService()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d := displayWith(tt.text)
			cs.DeleteLast(d)
			assert.Equal(t, tt.want, d.Text())
		})
	}
}

func TestToggleSign(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		changed bool
	}{
		{"5", "-5", true},
		{"-5", "5", true},
		{"0", "0", false},
		{"-0.0", "-0.0", false},
		{models.ErrorText, models.ErrorText, false},
		{"", "", false},
		{"5+3", "5+3", false},
		{"2.5", "-2.5", true},
		{"5.", "-5", true},
		{".5", "-0.5", true},
		{"-3.0", "3", true},
		{"007", "-7", true},
		{"0.00001", "-1e-05", true},
		{"inf", "-inf", true},
		{"-inf", "inf", true},
		{"Infinity", "-inf", true},
		{"nan", "nan", false},
		{"NaN", "nan", true},
		{"1_000", "-1000", true},
		{"0x10", "0x10", false},
		{"Select a valid shape", "Select a valid shape", false},
	}

	cs := NewCalculatorService()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d := displayWith(tt.text)
			assert.Equal(t, tt.changed, cs.ToggleSign(d))
			assert.Equal(t, tt.want, d.Text())
		})
	}
}

func TestToggleSignTwiceRestoresNumber(t *testing.T) {
	cs := NewCalculatorService()
	d := displayWith("42")
	cs.ToggleSign(d)
	cs.ToggleSign(d)
	assert.Equal(t, "42", d.Text())
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2+3", "5"},
		{"2+3X4", "14"},
		{"2+3×4", "14"},
		{"8÷2", "4"},
		{"7÷2", "3.5"},
		{"1÷3", "0.3333"},
		{"2÷3", "0.6667"},
		{"1.5+1.5", "3"},
		{"0.1+0.2", "0.3"},
		{"10-20", "-10"},
		{"5--3", "8"},
		{"1÷100000", "0"},
		{"123456789X987654321", "121932631112635269"},
		{"3.14159X2X2", "12.5664"},
	}

	cs := NewCalculatorService()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d := displayWith(tt.text)
			require.NoError(t, cs.Evaluate(d))
			assert.Equal(t, tt.want, d.Text())
		})
	}
}

func TestEvaluateFailuresShowError(t *testing.T) {
	tests := []struct {
		text    string
		wantErr error
	}{
		{"", expr.ErrSyntax},
		{"5+", expr.ErrSyntax},
		{"XX2", expr.ErrSyntax},
		{"2XX3", expr.ErrSyntax},
		{"1..2", expr.ErrSyntax},
		{models.ErrorText, expr.ErrSyntax},
		{"5÷0", expr.ErrDivisionByZero},
		{"0÷0.0", expr.ErrDivisionByZero},
	}

	cs := NewCalculatorService()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d := displayWith(tt.text)
			err := cs.Evaluate(d)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var evalErr *expr.EvaluationError
			assert.True(t, errors.As(err, &evalErr))
			assert.Equal(t, models.ErrorText, d.Text())
		})
	}
}

func TestAppendAfterFailedEvaluationStartsOver(t *testing.T) {
	cs := NewCalculatorService()
	d := displayWith("9÷0")
	require.Error(t, cs.Evaluate(d))

	cs.Append(d, "4")
	cs.Append(d, MultiplyGlyph)
	cs.Append(d, "2")
	require.NoError(t, cs.Evaluate(d))
	assert.Equal(t, "8", d.Text())
}

func TestToggleSignOnOverflowedArea(t *testing.T) {
	as := NewAreaService()
	as.SelectShape("Square")
	d := models.NewDisplay()
	require.NoError(t, as.ComputeArea(d, [2]string{"1e200", ""}))
	require.Equal(t, "inf", d.Text())

	cs := NewCalculatorService()
	assert.True(t, cs.ToggleSign(d))
	assert.Equal(t, "-inf", d.Text())

	assert.True(t, cs.ToggleSign(d))
	assert.Equal(t, "inf", d.Text())
}
