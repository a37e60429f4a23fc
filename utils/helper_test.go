package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCoerceMoney(t *testing.T) {
	cases := map[interface{}]string{
		"$1,250.50":  "1250.50",
		" 42 ":       "42",
		"":           "0",
		"n/a":        "0",
		"($15.00)":   "-15.00",
		"-":          "0",
		float64(9.5): "9.5",
	}
	for raw, want := range cases {
		if got := CoerceMoney(raw); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("CoerceMoney(%v) = %s, want %s", raw, got, want)
		}
	}
}

func TestCoerceString(t *testing.T) {
	if got := CoerceString(nil); got != "" {
		t.Errorf("nil coerced to %q", got)
	}
	if got := CoerceString("  padded  "); got != "padded" {
		t.Errorf("got %q", got)
	}
	if got := CoerceString(float64(26)); got != "26" {
		t.Errorf("float 26 coerced to %q", got)
	}
}

func TestCoerceFlag(t *testing.T) {
	for _, truthy := range []string{"Y", "yes", "X", "TRUE", "1"} {
		if !CoerceFlag(truthy) {
			t.Errorf("CoerceFlag(%q) = false", truthy)
		}
	}
	for _, falsy := range []string{"", "N", "no", "0", "maybe"} {
		if CoerceFlag(falsy) {
			t.Errorf("CoerceFlag(%q) = true", falsy)
		}
	}
}

func TestKindError(t *testing.T) {
	err := WrapKind(ErrKindParseError, ErrorRecordNotFound)
	if KindOf(err) != ErrKindParseError {
		t.Fatalf("KindOf = %q", KindOf(err))
	}
	if KindOf(ErrorRecordNotFound) != "" {
		t.Fatal("plain errors must carry no kind")
	}
	if WrapKind(ErrKindParseError, nil) != nil {
		t.Fatal("wrapping nil must stay nil")
	}
}
