package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestMoney(t *testing.T) {
	data := map[string]string{
		"42350":       "$42,350.00",
		"2650":        "$2,650.00",
		"315":         "$315.00",
		"0.105":       "$0.1050",
		"1":           "$1.00",
		"43197":       "$43,197.00",
		"847":         "$847.00",
		"0":           "$0.0000",
		"1234567.891": "$1,234,567.89",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, v, Money(Decimal(k)), "should format as currency")
		})
	}
}

func TestSignedPercent(t *testing.T) {
	data := map[string]string{
		"2.5":  "+2.5%",
		"0":    "+0%",
		"0.1":  "+0.1%",
		"-1.2": "-1.2%",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, v, SignedPercent(Decimal(k)))
		})
	}
}
