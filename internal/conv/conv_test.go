package conv

import "testing"

func TestIntToUint16(t *testing.T) {
	if got := IntToUint16(4096); got != 4096 {
		t.Errorf("IntToUint16(4096) = %d", got)
	}
	for _, n := range []int{-1, 1 << 16} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IntToUint16(%d) did not panic", n)
				}
			}()
			IntToUint16(n)
		}()
	}
}

func TestIntToUint8(t *testing.T) {
	if got := IntToUint8(9); got != 9 {
		t.Errorf("IntToUint8(9) = %d", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("IntToUint8(256) did not panic")
		}
	}()
	IntToUint8(256)
}
