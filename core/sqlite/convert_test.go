package sqlite

import (
	"database/sql/driver"
	"errors"
	"testing"

	sferrors "github.com/FocuswithJustin/sparkfn/core/errors"
	"github.com/FocuswithJustin/sparkfn/core/sparksql"
)

func TestFromDriver(t *testing.T) {
	tests := []struct {
		in   driver.Value
		want sparksql.ValueType
	}{
		{nil, sparksql.TypeNull},
		{int64(5), sparksql.TypeInteger},
		{float64(2.9), sparksql.TypeInteger},
		{true, sparksql.TypeBoolean},
		{"s", sparksql.TypeString},
		{[]byte{1}, sparksql.TypeBinary},
	}

	for _, tt := range tests {
		got, err := fromDriver(tt.in)
		if err != nil {
			t.Fatalf("fromDriver(%v) error: %v", tt.in, err)
		}
		if got.Type() != tt.want {
			t.Errorf("fromDriver(%v) type = %v, want %v", tt.in, got.Type(), tt.want)
		}
	}

	if v, _ := fromDriver(float64(-2.9)); v.AsInt64() != -2 {
		t.Errorf("fromDriver(-2.9) = %d, want -2", v.AsInt64())
	}
	if _, err := fromDriver(struct{}{}); !errors.Is(err, sferrors.ErrInvalidInput) {
		t.Errorf("fromDriver(struct) error = %v, want ErrInvalidInput", err)
	}
}

func TestToDriver(t *testing.T) {
	tests := []struct {
		in   sparksql.Value
		want driver.Value
	}{
		{sparksql.NewNullValue(), nil},
		{sparksql.NewBoolValue(true), int64(1)},
		{sparksql.NewBoolValue(false), int64(0)},
		{sparksql.NewIntValue(7), int64(7)},
		{sparksql.NewStringValue("x"), "x"},
	}

	for _, tt := range tests {
		if got := toDriver(tt.in); got != tt.want {
			t.Errorf("toDriver(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got, ok := toDriver(sparksql.NewBinaryValue([]byte("ab"))).([]byte); !ok || string(got) != "ab" {
		t.Errorf("toDriver(binary) = %v", got)
	}
}

func TestInvoke(t *testing.T) {
	fn, err := sparksql.DefaultRegistry().Resolve("substring_index")
	if err != nil {
		t.Fatal(err)
	}
	got, err := invoke(fn, []driver.Value{"a.b.c", ".", int64(-1)})
	if err != nil {
		t.Fatalf("invoke error: %v", err)
	}
	if got != "c" {
		t.Errorf("invoke = %v, want c", got)
	}

	if _, err := invoke(fn, []driver.Value{"a"}); err == nil {
		t.Error("expected arity error")
	}
}
