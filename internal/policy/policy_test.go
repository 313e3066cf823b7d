package policy

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		winRate   float64
		threshold float64
		want      Verdict
	}{
		{"well above threshold", 0.85, DefaultThreshold, Stay},
		{"exactly at threshold stays", 0.5, DefaultThreshold, Stay},
		{"just below threshold folds", 0.4999, DefaultThreshold, Fold},
		{"zero win rate folds", 0.0, DefaultThreshold, Fold},
		{"certain win stays", 1.0, DefaultThreshold, Stay},
		{"custom threshold inclusive", 0.7, 0.7, Stay},
		{"custom threshold below", 0.69, 0.7, Fold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.winRate, tt.threshold); got != tt.want {
				t.Errorf("Decide(%v, %v) = %v, want %v", tt.winRate, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestVerdictString(t *testing.T) {
	if Stay.String() != "stay" || Fold.String() != "fold" {
		t.Errorf("unexpected verdict strings: %q %q", Stay, Fold)
	}
}
