package domain

import "testing"

func TestVerdictClassification(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		verdict  Verdict
		accepted bool
		pending  bool
		rejected bool
	}{
		"ok":            {verdict: VerdictOK, accepted: true},
		"wrong answer":  {verdict: VerdictWrongAnswer, rejected: true},
		"testing":       {verdict: VerdictTesting, pending: true},
		"empty verdict": {verdict: "", pending: true},
		"compile error": {verdict: VerdictCompilationError, rejected: true},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := tc.verdict.IsAccepted(); got != tc.accepted {
				t.Fatalf("IsAccepted() = %v, expected %v", got, tc.accepted)
			}
			if got := tc.verdict.IsPending(); got != tc.pending {
				t.Fatalf("IsPending() = %v, expected %v", got, tc.pending)
			}
			if got := tc.verdict.IsRejected(); got != tc.rejected {
				t.Fatalf("IsRejected() = %v, expected %v", got, tc.rejected)
			}
		})
	}
}

func TestProblemKey(t *testing.T) {
	t.Parallel()

	a := Problem{ContestID: 1000, Index: "A"}
	b := Problem{ContestID: 1000, Index: "B"}
	if a.Key() == b.Key() {
		t.Fatalf("distinct problems must have distinct keys")
	}

	dup := Problem{ContestID: 1000, Index: "A"}
	if a.Key() != dup.Key() {
		t.Fatalf("same problem must have same key")
	}
}

func TestBandFor(t *testing.T) {
	t.Parallel()

	rating := 1200
	band := BandFor(&rating)
	if band.Label != "Pupil" {
		t.Fatalf("expected Pupil band for 1200, got %s", band.Label)
	}

	if band := BandFor(nil); band.Label != "Unrated" {
		t.Fatalf("expected Unrated band for nil rating, got %s", band.Label)
	}

	high := 4200
	if band := BandFor(&high); band.Label != "Legendary Grandmaster" {
		t.Fatalf("expected top band for 4200, got %s", band.Label)
	}
}

func TestSubmissionURL(t *testing.T) {
	t.Parallel()

	s := &Submission{ID: 42, ContestID: 1000}
	if got := s.URL(); got != "https://codeforces.com/contest/1000/submission/42" {
		t.Fatalf("unexpected submission url: %s", got)
	}

	gym := &Submission{ID: 42}
	if got := gym.URL(); got != "" {
		t.Fatalf("expected empty url without contest, got %s", got)
	}
}
