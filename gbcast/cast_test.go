package gbcast_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gbmatrix/gbcast"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

func TestCastIdentity(t *testing.T) {
	fn, err := gbcast.Cast(gbtype.Int32, gbtype.Int32)
	if err != nil {
		t.Fatalf("Cast identity: %v", err)
	}
	if got := fn(int32(7)); got != int32(7) {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestCastTruncatesLikeC(t *testing.T) {
	fn, err := gbcast.Cast(gbtype.Int8, gbtype.Int32)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if got := fn(int32(257)); got != int8(1) {
		t.Fatalf("expected truncation to 1, got %v", got)
	}
}

func TestCastFloatToInt(t *testing.T) {
	fn, err := gbcast.Cast(gbtype.Int32, gbtype.Float64)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if got := fn(float64(3.9)); got != int32(3) {
		t.Fatalf("expected truncation to 3, got %v", got)
	}
}

func TestCastBoolRoundtrip(t *testing.T) {
	toBool, err := gbcast.Cast(gbtype.Bool, gbtype.Int32)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if got := toBool(int32(5)); got != true {
		t.Fatalf("expected true for nonzero, got %v", got)
	}

	fromBool, err := gbcast.Cast(gbtype.Int32, gbtype.Bool)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if got := fromBool(true); got != int32(1) {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestCastComplexNarrowingMissing(t *testing.T) {
	if _, err := gbcast.Cast(gbtype.Float64, gbtype.Complex128); !errors.Is(err, gbstatus.ErrDomainMismatch) {
		t.Fatalf("expected ErrDomainMismatch for complex->real, got %v", err)
	}
}

func TestLookupOpaqueSameSize(t *testing.T) {
	a, err := gbtype.NewOpaqueType("A", 8)
	if err != nil {
		t.Fatalf("NewOpaqueType: %v", err)
	}
	b, err := gbtype.NewOpaqueType("B", 8)
	if err != nil {
		t.Fatalf("NewOpaqueType: %v", err)
	}

	fn, err := gbcast.LookupOpaque(b, a)
	if err != nil {
		t.Fatalf("LookupOpaque: %v", err)
	}
	if got := fn("x"); got != "x" {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestLookupOpaqueDifferentSize(t *testing.T) {
	a, err := gbtype.NewOpaqueType("A", 8)
	if err != nil {
		t.Fatalf("NewOpaqueType: %v", err)
	}
	b, err := gbtype.NewOpaqueType("B", 4)
	if err != nil {
		t.Fatalf("NewOpaqueType: %v", err)
	}

	if _, err := gbcast.LookupOpaque(b, a); !errors.Is(err, gbstatus.ErrDomainMismatch) {
		t.Fatalf("expected ErrDomainMismatch, got %v", err)
	}
}
