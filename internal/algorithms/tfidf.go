package algorithms

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// TFIDFVectorizer fits a term-frequency-inverse-document-frequency model
// over unigrams and bigrams (minimum document frequency 1) and transforms
// documents into dense vectors over the learned vocabulary.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{vocabulary: make(map[string]int)}
}

// Fit builds the vocabulary and IDF statistics from the corpus.
func (v *TFIDFVectorizer) Fit(docs []string) {
	docCount := float64(len(docs))
	docFrequency := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range ngrams(doc) {
			if !seen[term] {
				docFrequency[term]++
				seen[term] = true
			}
			if _, ok := v.vocabulary[term]; !ok {
				v.vocabulary[term] = len(v.vocabulary)
			}
		}
	}

	v.idf = make([]float64, len(v.vocabulary))
	for term, index := range v.vocabulary {
		v.idf[index] = math.Log(docCount/(float64(docFrequency[term])+1)) + 1
	}
}

// Transform converts a document into its TF-IDF vector. Terms outside the
// fitted vocabulary are ignored.
func (v *TFIDFVectorizer) Transform(doc string) []float64 {
	vector := make([]float64, len(v.vocabulary))
	terms := ngrams(doc)
	if len(terms) == 0 {
		return vector
	}

	counts := make(map[string]float64)
	for _, term := range terms {
		counts[term]++
	}

	total := float64(len(terms))
	for term, count := range counts {
		if index, ok := v.vocabulary[term]; ok {
			vector[index] = (count / total) * v.idf[index]
		}
	}
	return vector
}

// CosineSimilarity of two equal-length vectors; 0 when either has no
// magnitude.
func CosineSimilarity(a, b []float64) float64 {
	dot := floats.Dot(a, b)
	normA := math.Sqrt(floats.Dot(a, a))
	normB := math.Sqrt(floats.Dot(b, b))
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

// TextSimilarities fits a vectorizer over the student document plus every
// tutor document and returns the cosine similarity of the student vector
// against each tutor vector, in input order. The result is auxiliary: it
// is logged per candidate but never folded into the ranking score.
func TextSimilarities(studentDoc string, tutorDocs []string) []float64 {
	corpus := make([]string, 0, len(tutorDocs)+1)
	corpus = append(corpus, studentDoc)
	corpus = append(corpus, tutorDocs...)

	vectorizer := NewTFIDFVectorizer()
	vectorizer.Fit(corpus)

	studentVector := vectorizer.Transform(studentDoc)
	similarities := make([]float64, len(tutorDocs))
	for i, doc := range tutorDocs {
		similarities[i] = CosineSimilarity(studentVector, vectorizer.Transform(doc))
	}
	return similarities
}

// ngrams tokenizes a document into unigrams plus adjacent-pair bigrams.
func ngrams(doc string) []string {
	words := strings.Fields(doc)
	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}
