// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

// Package featureindex builds TF-IDF vector spaces over short categorical
// feature texts and scores free-text queries against them.
//
// The weighting follows the conventional smoothed scheme:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	row(d)    = L2-normalised tf * idf
//
// Vocabulary selection keeps the MaxFeatures most frequent terms across the
// corpus (ties by term), then indexes them in alphabetical order, so two
// builds over the same documents always produce the same space.
//
// An Index is immutable after Build and safe for concurrent use.
package featureindex

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the vocabulary when Options.MaxFeatures is unset.
const DefaultMaxFeatures = 1000

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Options configures Build.
type Options struct {
	// MaxFeatures caps the vocabulary size. Zero means DefaultMaxFeatures.
	MaxFeatures int

	// KeepStopWords disables English stop-word removal.
	KeepStopWords bool
}

// Entry is one non-zero coordinate of a sparse vector.
type Entry struct {
	Col    int
	Weight float64
}

// Vector is a sparse vector with entries sorted by column.
type Vector []Entry

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, e := range v {
		sum += e.Weight * e.Weight
	}
	return math.Sqrt(sum)
}

// Index is a TF-IDF vector space with one row per input document.
type Index struct {
	vocab map[string]int
	terms []string
	idf   []float64
	rows  []Vector
	opts  Options
}

// Tokenize lowercases text and splits it into tokens of two or more word
// characters, in order of appearance.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Build fits a vocabulary and IDF weights over docs and returns the weighted
// rows in document order. An empty corpus, or one made only of stop words,
// yields an index with an empty vocabulary whose scores are all zero.
func Build(docs []string, opts Options) *Index {
	if opts.MaxFeatures <= 0 {
		opts.MaxFeatures = DefaultMaxFeatures
	}

	tokenized := make([][]string, len(docs))
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		tokens := filterTokens(Tokenize(doc), opts.KeepStopWords)
		tokenized[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			termFreq[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}

	terms := selectVocabulary(termFreq, opts.MaxFeatures)

	idx := &Index{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
		rows:  make([]Vector, len(docs)),
		opts:  opts,
	}

	n := float64(len(docs))
	for col, term := range terms {
		idx.vocab[term] = col
		idx.idf[col] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	for i, tokens := range tokenized {
		idx.rows[i] = idx.weigh(tokens)
	}

	return idx
}

// selectVocabulary keeps the max most frequent terms, breaking frequency ties
// by term, and returns them sorted alphabetically.
func selectVocabulary(termFreq map[string]int, max int) []string {
	terms := make([]string, 0, len(termFreq))
	for t := range termFreq {
		terms = append(terms, t)
	}

	if len(terms) > max {
		sort.Slice(terms, func(i, j int) bool {
			fi, fj := termFreq[terms[i]], termFreq[terms[j]]
			if fi != fj {
				return fi > fj
			}
			return terms[i] < terms[j]
		})
		terms = terms[:max]
	}

	sort.Strings(terms)
	return terms
}

func filterTokens(tokens []string, keepStopWords bool) []string {
	if keepStopWords {
		return tokens
	}
	out := tokens[:0]
	for _, tok := range tokens {
		if !IsStopWord(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// weigh maps tokens to an L2-normalised TF-IDF vector. Tokens outside the
// vocabulary are dropped.
func (idx *Index) weigh(tokens []string) Vector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if col, ok := idx.vocab[tok]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(Vector, 0, len(counts))
	for col, c := range counts {
		vec = append(vec, Entry{Col: col, Weight: float64(c) * idx.idf[col]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Col < vec[j].Col })

	norm := vec.Norm()
	if norm > 0 {
		for i := range vec {
			vec[i].Weight /= norm
		}
	}
	return vec
}

// Query transforms text into the index's vector space.
func (idx *Index) Query(text string) Vector {
	return idx.weigh(filterTokens(Tokenize(text), idx.opts.KeepStopWords))
}

// Len returns the number of rows.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// VocabularySize returns the number of indexed terms.
func (idx *Index) VocabularySize() int {
	return len(idx.terms)
}

// Scores returns the cosine similarity of q against every row, in row order.
func (idx *Index) Scores(q Vector) []float64 {
	scores := make([]float64, len(idx.rows))
	if len(q) == 0 {
		return scores
	}
	for i, row := range idx.rows {
		scores[i] = Cosine(q, row)
	}
	return scores
}

// Cosine returns the cosine similarity of a and b, clamped to [0, 1].
// A zero vector on either side scores 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Col == b[j].Col:
			dot += a[i].Weight * b[j].Weight
			i++
			j++
		case a[i].Col < b[j].Col:
			i++
		default:
			j++
		}
	}

	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}

	sim := dot / (na * nb)
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	default:
		return sim
	}
}
