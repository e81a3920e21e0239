package challenge

import "testing"

func TestResolveQualityExplicitQualityWins(t *testing.T) {
	opt := Option{
		ID:      "opt-1",
		Text:    "Some answer text",
		Quality: QualityPoor,
		// Explicit quality must beat both of these signals.
		IsCorrect: true,
		Consequences: []Consequence{
			{Type: ConsequencePositive}, {Type: ConsequencePositive}, {Type: ConsequencePositive},
		},
	}

	for idx := 0; idx < 10; idx++ {
		got := ResolveQuality(opt, idx)
		if got.Quality != QualityPoor || got.Score != 40 {
			t.Fatalf("index %d: got %s/%d, want poor/40", idx, got.Quality, got.Score)
		}
	}
}

func TestResolveQualityConsequenceRatios(t *testing.T) {
	pos := Consequence{Type: ConsequencePositive}
	neg := Consequence{Type: ConsequenceNegative}
	neu := Consequence{Type: ConsequenceNeutral}

	testCases := []struct {
		name         string
		consequences []Consequence
		wantQuality  Quality
		wantScore    int
	}{
		{"three positive one negative", []Consequence{pos, pos, pos, neg}, QualityExcellent, 95},
		{"all positive", []Consequence{pos, pos}, QualityExcellent, 95},
		{"half positive", []Consequence{pos, neg}, QualityGood, 80},
		{"one positive one neutral one negative", []Consequence{pos, neu, neu}, QualityGood, 80},
		{"quarter positive half negative", []Consequence{pos, neu, neg, neg}, QualityAverage, 65},
		{"all negative", []Consequence{neg, neg, neg}, QualityPoor, 40},
		{"mostly negative", []Consequence{pos, neg, neg, neg}, QualityPoor, 40},
		{"empty list", []Consequence{}, QualityAverage, 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveQuality(Option{ID: "x", Text: "y", Consequences: tc.consequences}, 0)
			if got.Quality != tc.wantQuality {
				t.Errorf("quality = %s, want %s", got.Quality, tc.wantQuality)
			}
			if got.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tc.wantScore)
			}
		})
	}
}

func TestResolveQualityCorrectFlag(t *testing.T) {
	got := ResolveQuality(Option{ID: "a", Text: "correct answer", IsCorrect: true}, 3)
	if got.Quality != QualityExcellent || got.Score != 95 {
		t.Fatalf("got %s/%d, want excellent/95", got.Quality, got.Score)
	}
}

func TestResolveQualityNoSignalSpread(t *testing.T) {
	// (index + len(text) + len(id)) mod 4 over the fixed bucket order.
	opt := Option{ID: "ab", Text: "abcd"} // len sum = 6

	testCases := []struct {
		index string
		idx   int
		want  Quality
	}{
		{"index 0", 0, QualityAverage},   // 6 % 4 = 2
		{"index 1", 1, QualityPoor},      // 7 % 4 = 3
		{"index 2", 2, QualityExcellent}, // 8 % 4 = 0
		{"index 3", 3, QualityGood},      // 9 % 4 = 1
	}

	for _, tc := range testCases {
		t.Run(tc.index, func(t *testing.T) {
			got := ResolveQuality(opt, tc.idx)
			if got.Quality != tc.want {
				t.Errorf("quality = %s, want %s", got.Quality, tc.want)
			}
			// Resolution must be stable across repeated calls.
			again := ResolveQuality(opt, tc.idx)
			if again != got {
				t.Errorf("repeat call resolved differently: %v then %v", got, again)
			}
		})
	}
}
