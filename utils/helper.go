package utils

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

func DereferencePtr[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}
	return *ptr
}

func UniqueSlice[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func ParseDecimal(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(trimmed)
}

// CoerceMoney turns a raw cell value into a decimal amount. Currency
// symbols, thousands separators and surrounding whitespace are stripped.
// Empty and unparseable cells coerce to zero.
func CoerceMoney(value interface{}) decimal.Decimal {
	s := CoerceString(value)
	if s == "" {
		return decimal.Zero
	}
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	cleaner := strings.NewReplacer("$", "", ",", "", " ", "")
	s = cleaner.Replace(s)
	if s == "" || s == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return d.Neg()
	}
	return d
}

// CoerceString renders a raw cell value as a trimmed string. Numeric
// cells keep their literal representation.
func CoerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return decimal.NewFromFloat(v).String()
	case float32:
		return decimal.NewFromFloat32(v).String()
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// CoerceFlag interprets common spreadsheet truthy markers.
func CoerceFlag(value interface{}) bool {
	switch strings.ToUpper(CoerceString(value)) {
	case "Y", "YES", "X", "TRUE", "1":
		return true
	}
	return false
}

func GenerateUniqueFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	stamp := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("%s_%s_%s%s", base, stamp, uuid.New().String()[:8], ext)
}

// ExecTemplate renders a SQL template against the given data. Reports use
// this to keep their raw queries readable.
func ExecTemplate(tString string, data map[string]interface{}) (string, error) {
	t, err := template.New("sql").Parse(tString)
	if err != nil {
		return "", errors.New("error parsing sql template: " + err.Error())
	}
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return "", errors.New("failed to execute sql template: " + err.Error())
	}
	return b.String(), nil
}

// ProcessValidationErrors flattens validator errors into a readable message.
func ProcessValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	var parts []string
	for _, fieldErr := range validationErrors {
		parts = append(parts, fmt.Sprintf("field %s failed on the %s rule", fieldErr.Field(), fieldErr.Tag()))
	}
	return strings.Join(parts, "; ")
}
