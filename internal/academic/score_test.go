package academic

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScoreAcademic_SteadyPacing(t *testing.T) {
	times := make([]float64, 10)
	for i := range times {
		times[i] = 30
	}
	score, err := ScoreAcademic(7, 10, times)
	if err != nil {
		t.Fatalf("ScoreAcademic returned error: %v", err)
	}
	if !almostEqual(score.Percentage, 70) {
		t.Errorf("percentage = %f, want 70", score.Percentage)
	}
	if score.Tier != 4 {
		t.Errorf("tier = %d, want 4", score.Tier)
	}
	if !almostEqual(score.Confidence, 0.75) {
		t.Errorf("confidence = %f, want 0.75", score.Confidence)
	}
}

func TestScoreAcademic_RapidGuessingPenalty(t *testing.T) {
	times := make([]float64, 10)
	for i := range times {
		times[i] = 5
	}
	score, err := ScoreAcademic(7, 10, times)
	if err != nil {
		t.Fatalf("ScoreAcademic returned error: %v", err)
	}
	if !almostEqual(score.Confidence, 0.65) {
		t.Errorf("confidence = %f, want 0.65", score.Confidence)
	}
}

func TestScoreAcademic_HesitationPenalty(t *testing.T) {
	times := make([]float64, 4)
	for i := range times {
		times[i] = 90
	}
	score, err := ScoreAcademic(4, 4, times)
	if err != nil {
		t.Fatalf("ScoreAcademic returned error: %v", err)
	}
	if score.Tier != 5 {
		t.Errorf("tier = %d, want 5", score.Tier)
	}
	if !almostEqual(score.Confidence, 0.75) {
		t.Errorf("confidence = %f, want 0.75", score.Confidence)
	}
}

func TestScoreAcademic_NoTimings(t *testing.T) {
	score, err := ScoreAcademic(2, 10, nil)
	if err != nil {
		t.Fatalf("ScoreAcademic returned error: %v", err)
	}
	if score.Tier != 2 {
		t.Errorf("tier = %d, want 2", score.Tier)
	}
	// Base confidence unchanged when no timings are supplied.
	if !almostEqual(score.Confidence, 0.65) {
		t.Errorf("confidence = %f, want 0.65", score.Confidence)
	}
}

func TestScoreAcademic_ConfidenceFloor(t *testing.T) {
	times := make([]float64, 5)
	for i := range times {
		times[i] = 2
	}
	// Tier 1 base 0.60 minus 0.10 would be 0.50; the floor holds.
	score, err := ScoreAcademic(0, 5, times)
	if err != nil {
		t.Fatalf("ScoreAcademic returned error: %v", err)
	}
	if score.Confidence < MinConfidence || score.Confidence > MaxConfidence {
		t.Errorf("confidence %f outside [%.1f,%.1f]", score.Confidence, MinConfidence, MaxConfidence)
	}
	if !almostEqual(score.Confidence, MinConfidence) {
		t.Errorf("confidence = %f, want %f", score.Confidence, MinConfidence)
	}
}

func TestTierFor_Breakpoints(t *testing.T) {
	cases := []struct {
		percentage float64
		want       int
	}{
		{0, 1}, {19.9, 1},
		{20, 2}, {39.9, 2},
		{40, 3}, {59.9, 3},
		{60, 4}, {79.9, 4},
		{80, 5}, {100, 5},
	}
	for _, c := range cases {
		if got := TierFor(c.percentage); got != c.want {
			t.Errorf("TierFor(%.1f) = %d, want %d", c.percentage, got, c.want)
		}
	}
}

func TestTimingAdjustment_Boundaries(t *testing.T) {
	cases := []struct {
		name  string
		times []float64
		want  float64
	}{
		{"empty", nil, 0},
		{"exactly rapid threshold", []float64{10, 10}, 0},
		{"just under rapid", []float64{9.9}, -0.10},
		{"exactly hesitation threshold", []float64{60}, 0},
		{"just over hesitation", []float64{60.1}, -0.05},
		{"mixed mean in range", []float64{5, 55}, 0},
	}
	for _, c := range cases {
		if got := TimingAdjustment(c.times); !almostEqual(got, c.want) {
			t.Errorf("%s: TimingAdjustment = %f, want %f", c.name, got, c.want)
		}
	}
}

func TestScoreAcademic_Validation(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		total   int
		times   []float64
	}{
		{"zero total", 0, 0, nil},
		{"negative total", 1, -3, nil},
		{"negative correct", -1, 10, nil},
		{"correct above total", 11, 10, nil},
		{"timing length mismatch", 5, 10, []float64{30, 30}},
	}
	for _, c := range cases {
		_, err := ScoreAcademic(c.correct, c.total, c.times)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: got %v, want *ValidationError", c.name, err)
		}
	}
}

func TestScoreAcademic_PerfectAndZero(t *testing.T) {
	perfect, err := ScoreAcademic(10, 10, nil)
	if err != nil {
		t.Fatalf("ScoreAcademic returned error: %v", err)
	}
	if perfect.Tier != 5 || !almostEqual(perfect.Percentage, 100) {
		t.Errorf("perfect score = %+v, want tier 5 at 100%%", perfect)
	}

	zero, err := ScoreAcademic(0, 10, nil)
	if err != nil {
		t.Fatalf("ScoreAcademic returned error: %v", err)
	}
	if zero.Tier != 1 || !almostEqual(zero.Percentage, 0) {
		t.Errorf("zero score = %+v, want tier 1 at 0%%", zero)
	}
}
