package models

import "testing"

func TestScoreEntry_HasPassingScore(t *testing.T) {
	passing := 0.0
	if (ScoreEntry{Score: 5, Total: 10}).HasPassingScore() {
		t.Fatal("entry without a passing score reported one")
	}
	if !(ScoreEntry{Score: 5, Total: 10, PassingScore: &passing}).HasPassingScore() {
		t.Fatal("a zero passing score is still a passing score")
	}
}
