package nlp

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	vocabularyCap = 8000
	ngramMin      = 1
	ngramMax      = 3
	maxDocFreq    = 0.8
)

var tokenPattern = regexp.MustCompile(`[\p{L}]+`)

// vectorizer is a term-frequency/inverse-document-frequency model over
// 1-3 word spans with a capped vocabulary and stop-word removal.
type vectorizer struct {
	stopwords map[string]bool
	vocab     map[string]int
	idf       []float64
}

func newVectorizer(stopwords map[string]bool) *vectorizer {
	return &vectorizer{stopwords: stopwords}
}

// terms tokenizes text into stop-word-filtered unigrams and builds the
// configured n-gram spans.
func (v *vectorizer) terms(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if !v.stopwords[t] {
			tokens = append(tokens, t)
		}
	}
	var out []string
	for n := ngramMin; n <= ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// fitTransform learns the vocabulary and idf weights from docs and returns
// each document as an l2-normalized sparse tf-idf vector.
func (v *vectorizer) fitTransform(docs []string) []map[int]float64 {
	termLists := make([][]string, len(docs))
	df := make(map[string]int)
	tfTotal := make(map[string]int)
	for i, doc := range docs {
		termLists[i] = v.terms(doc)
		seen := make(map[string]bool)
		for _, t := range termLists[i] {
			tfTotal[t]++
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	// Drop overly common terms, then cap the vocabulary keeping the most
	// frequent terms, ties alphabetical for determinism.
	n := len(docs)
	kept := make([]string, 0, len(df))
	for term, count := range df {
		if n > 1 && float64(count) > maxDocFreq*float64(n) {
			continue
		}
		kept = append(kept, term)
	}
	sort.Slice(kept, func(i, j int) bool {
		if tfTotal[kept[i]] != tfTotal[kept[j]] {
			return tfTotal[kept[i]] > tfTotal[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if len(kept) > vocabularyCap {
		kept = kept[:vocabularyCap]
	}

	v.vocab = make(map[string]int, len(kept))
	v.idf = make([]float64, len(kept))
	for i, term := range kept {
		v.vocab[term] = i
		v.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	vectors := make([]map[int]float64, len(docs))
	for i, terms := range termLists {
		vec := make(map[int]float64)
		for _, t := range terms {
			if idx, ok := v.vocab[t]; ok {
				vec[idx] += v.idf[idx]
			}
		}
		normalize(vec)
		vectors[i] = vec
	}
	return vectors
}

func normalize(vec map[int]float64) {
	sum := 0.0
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i, w := range vec {
		vec[i] = w / norm
	}
}

// cosine is the similarity of two l2-normalized sparse vectors.
func cosine(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for i, w := range a {
		dot += w * b[i]
	}
	return dot
}
