package session

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		submitted []string
		correct   []string
		want      bool
	}{
		{"single match", []string{"A"}, []string{"A"}, true},
		{"order independent", []string{"B", "A"}, []string{"A", "B"}, true},
		{"case insensitive", []string{"a", "b"}, []string{"A", "B"}, true},
		{"surrounding space", []string{" c "}, []string{"C"}, true},
		{"subset is wrong", []string{"A"}, []string{"A", "B"}, false},
		{"superset is wrong", []string{"A", "B", "C"}, []string{"A", "B"}, false},
		{"disjoint", []string{"D"}, []string{"A"}, false},
		{"empty submission", nil, []string{"A"}, false},
		{"blank submission", []string{" "}, []string{"A"}, false},
		{"duplicates collapse", []string{"A", "a"}, []string{"A"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.submitted, tt.correct); got != tt.want {
				t.Errorf("Evaluate(%v, %v) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}
