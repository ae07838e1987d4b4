// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package featureindex

import (
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"Apparel Topwear T-Shirt", []string{"apparel", "topwear", "shirt"}},
		{"a b cd", []string{"cd"}},
		{"  Navy   Blue ", []string{"navy", "blue"}},
		{"", nil},
		{"Café Noir", []string{"café", "noir"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"top", "bottom", "the", "and"} {
		if !IsStopWord(w) {
			t.Errorf("%q should be a stop word", w)
		}
	}
	for _, w := range []string{"shirt", "casual", "men", "summer", "blue"} {
		if IsStopWord(w) {
			t.Errorf("%q should not be a stop word", w)
		}
	}
}

func TestBuild_Weights(t *testing.T) {
	t.Parallel()

	idx := Build([]string{"apparel shirts casual", "apparel jeans casual"}, Options{})

	wantTerms := []string{"apparel", "casual", "jeans", "shirts"}
	if got := idx.terms; !reflect.DeepEqual(got, wantTerms) {
		t.Fatalf("terms = %v, want %v", got, wantTerms)
	}

	// apparel and casual appear in both docs: idf = ln(3/3)+1 = 1
	// shirts appears in one: idf = ln(3/2)+1
	rare := math.Log(1.5) + 1
	norm := math.Sqrt(1 + 1 + rare*rare)

	row := idx.rows[0]
	want := Vector{{0, 1 / norm}, {1, 1 / norm}, {3, rare / norm}}
	if len(row) != len(want) {
		t.Fatalf("rows[0] = %v, want %v", row, want)
	}
	for i := range want {
		if row[i].Col != want[i].Col || math.Abs(row[i].Weight-want[i].Weight) > epsilon {
			t.Errorf("rows[0][%d] = %+v, want %+v", i, row[i], want[i])
		}
	}

	if n := row.Norm(); math.Abs(n-1) > epsilon {
		t.Errorf("row norm = %v, want 1", n)
	}
}

func TestBuild_MaxFeatures(t *testing.T) {
	t.Parallel()

	// red: 3, blue: 1, green: 1 -> keep red, then blue wins the tie
	idx := Build([]string{"red red blue", "red green"}, Options{MaxFeatures: 2})

	want := []string{"blue", "red"}
	if got := idx.terms; !reflect.DeepEqual(got, want) {
		t.Errorf("terms = %v, want %v", got, want)
	}
	if idx.VocabularySize() != 2 {
		t.Errorf("VocabularySize() = %d, want 2", idx.VocabularySize())
	}
}

func TestBuild_StopWordsExcluded(t *testing.T) {
	t.Parallel()

	idx := Build([]string{"apparel top tops"}, Options{})
	for _, term := range idx.terms {
		if term == "top" {
			t.Error("stop word 'top' should not be in vocabulary")
		}
	}

	kept := Build([]string{"apparel top"}, Options{KeepStopWords: true})
	if kept.VocabularySize() != 2 {
		t.Errorf("KeepStopWords vocabulary = %v", kept.terms)
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	t.Parallel()

	for _, docs := range [][]string{nil, {"the and of", ""}} {
		idx := Build(docs, Options{})
		if idx.VocabularySize() != 0 {
			t.Errorf("expected empty vocabulary for %q", docs)
		}
		scores := idx.Scores(idx.Query("men casual blue spring"))
		if len(scores) != len(docs) {
			t.Fatalf("Scores() len = %d, want %d", len(scores), len(docs))
		}
		for i, s := range scores {
			if s != 0 {
				t.Errorf("score[%d] = %v, want 0", i, s)
			}
		}
	}
}

func TestQuery_OutOfVocabulary(t *testing.T) {
	t.Parallel()

	idx := Build([]string{"apparel shirts casual blue"}, Options{})

	if q := idx.Query("zzz qqq"); len(q) != 0 {
		t.Errorf("OOV query should be the zero vector, got %v", q)
	}

	withOOV := idx.Query("casual zzz")
	onlyKnown := idx.Query("casual")
	if !reflect.DeepEqual(withOOV, onlyKnown) {
		t.Errorf("OOV tokens changed the vector: %v vs %v", withOOV, onlyKnown)
	}
}

func TestScores_RangeAndOrder(t *testing.T) {
	t.Parallel()

	docs := []string{
		"apparel topwear shirts casual blue summer",
		"apparel topwear shirts formal white winter",
		"footwear shoes casual shoes black fall",
	}
	idx := Build(docs, Options{})

	scores := idx.Scores(idx.Query("men casual blue summer"))
	if len(scores) != 3 {
		t.Fatalf("Scores() len = %d", len(scores))
	}
	for i, s := range scores {
		if s < 0 || s > 1 {
			t.Errorf("score[%d] = %v outside [0,1]", i, s)
		}
	}
	if !(scores[0] > scores[2] && scores[2] > scores[1]) {
		t.Errorf("unexpected score order: %v", scores)
	}
	if scores[1] != 0 {
		t.Errorf("disjoint document should score 0, got %v", scores[1])
	}
}

func TestCosine(t *testing.T) {
	t.Parallel()

	a := Vector{{0, 3}, {2, 4}}
	if got := Cosine(a, a); math.Abs(got-1) > epsilon {
		t.Errorf("Cosine(a, a) = %v, want 1", got)
	}
	if got := Cosine(a, Vector{{1, 1}}); got != 0 {
		t.Errorf("orthogonal Cosine = %v, want 0", got)
	}
	if got := Cosine(a, nil); got != 0 {
		t.Errorf("Cosine with zero vector = %v, want 0", got)
	}
	if got := Cosine(Vector{{0, 1}}, Vector{{0, -1}}); got != 0 {
		t.Errorf("negative Cosine should clamp to 0, got %v", got)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	docs := []string{"apparel shirts casual blue", "apparel jeans casual black", "apparel shirts formal blue"}
	a := Build(docs, Options{})
	b := Build(docs, Options{})

	if !reflect.DeepEqual(a.terms, b.terms) {
		t.Fatal("vocabularies differ between identical builds")
	}
	q := "men casual blue spring"
	if !reflect.DeepEqual(a.Scores(a.Query(q)), b.Scores(b.Query(q))) {
		t.Error("scores differ between identical builds")
	}
}
