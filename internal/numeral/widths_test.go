package numeral

import "testing"

func TestWidthsOf(t *testing.T) {
	w := DefaultWidths()

	tests := []struct {
		family Family
		want   int
	}{
		{Decimal, 3},
		{Binary, 4},
		{Octal, 4},
		{Hexadecimal, 4},
		{PointFloat, 3},
		{ExponentFloat, 3},
		{familyInvalid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			if got := w.Of(tt.family); got != tt.want {
				t.Errorf("Of(%v) = %d, want %d", tt.family, got, tt.want)
			}
		})
	}
}

func TestWidthsValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		if err := DefaultWidths().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("zero width rejected", func(t *testing.T) {
		w := DefaultWidths()
		w.Bin = 0
		err := w.Validate()
		if err == nil {
			t.Fatal("Validate() = nil, want error")
		}
		const want = "group width for binary literals must be positive, got 0"
		if err.Error() != want {
			t.Errorf("Validate() = %q, want %q", err, want)
		}
	})

	t.Run("negative width rejected", func(t *testing.T) {
		w := DefaultWidths()
		w.Exponent = -2
		if err := w.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})
}
