package datagen

import (
	"io"
	"testing"
)

func TestSliceSource(t *testing.T) {
	src := NewSliceSource([]interface{}{"a", "b", "c"})
	for _, want := range []string{"a", "b", "c"} {
		rec, err := src.Record()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.(string) != want {
			t.Errorf("record exp: %s, got: %v", want, rec)
		}
	}
	if _, err := src.Record(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if _, err := src.Record(); err != io.EOF {
		t.Fatalf("expected io.EOF to repeat, got %v", err)
	}
}

func TestNexter(t *testing.T) {
	n := NewNexter()
	for i := uint64(0); i < 100; i++ {
		if got := n.Next(); got != i {
			t.Fatalf("next exp: %d, got: %d", i, got)
		}
	}
	if got := n.Last(); got != 99 {
		t.Fatalf("last exp: 99, got: %d", got)
	}
}
