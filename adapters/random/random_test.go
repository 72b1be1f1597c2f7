package random_test

import (
	"testing"

	"github.com/artpar/storeadmin/adapters/random"
)

func TestReal_String(t *testing.T) {
	r := random.Real{}

	for _, n := range []int{1, 7, 32} {
		s, err := r.String(n)
		if err != nil {
			t.Fatalf("String(%d): %v", n, err)
		}
		if len(s) != n {
			t.Errorf("String(%d) has length %d", n, len(s))
		}
	}

	a, _ := r.String(32)
	b, _ := r.String(32)
	if a == b {
		t.Error("random strings should differ")
	}
}

func TestFake_Deterministic(t *testing.T) {
	f1, f2 := random.NewFake(), random.NewFake()

	a, _ := f1.String(16)
	b, _ := f2.String(16)
	if a != b {
		t.Errorf("fresh fakes disagree: %s vs %s", a, b)
	}

	c, _ := f1.String(16)
	if a == c {
		t.Error("successive calls should differ")
	}
}
