package geometry

import "testing"

func TestClassifyKnownFractions(t *testing.T) {
	cases := []struct {
		name      string
		dimension float64
		want      float64
	}{
		{"half", 600, 1.0 / 2},
		{"third", 400, 1.0 / 3},
		{"quarter", 300, 1.0 / 4},
		{"two-thirds", 800, 2.0 / 3},
		{"three-quarters", 900, 3.0 / 4},
		// Gap-adjusted sizes still classify within the 2% tolerance.
		{"half with gap", 596, 1.0 / 2},
		{"third with gap", 394, 1.0 / 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Classify(tc.dimension, 1200, DefaultTolerance)
			if !f.Classified {
				t.Fatalf("Classify(%v) unclassified, want %v", tc.dimension, tc.want)
			}
			if f.Value != tc.want {
				t.Fatalf("Classify(%v) = %v, want %v", tc.dimension, f.Value, tc.want)
			}
		})
	}
}

func TestClassifyUnclassified(t *testing.T) {
	f := Classify(500, 1200, DefaultTolerance)
	if f.Classified {
		t.Fatalf("Classify(500/1200) classified as %v, want unclassified", f.Value)
	}
	if f.Value != 500.0/1200 {
		t.Fatalf("unclassified ratio = %v, want %v", f.Value, 500.0/1200)
	}
}

func TestClassifyDegenerateArea(t *testing.T) {
	f := Classify(300, 0, DefaultTolerance)
	if f.Classified {
		t.Fatal("Classify against zero dimension should be unclassified")
	}
}
