package classifier

import (
	"github.com/jbrukh/bayesian"
)

// NaiveBayes is a bag-of-words naive Bayes TextClassifier.
// It is trained once in NewNaiveBayes and is read-only afterwards, so
// concurrent Classify calls need no locking.
type NaiveBayes struct {
	model *bayesian.Classifier
	vocab map[string]struct{}
}

var _ TextClassifier = (*NaiveBayes)(nil)

// NewNaiveBayes trains a classifier on examples.
func NewNaiveBayes(examples []Example) (*NaiveBayes, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}

	var classes []bayesian.Class
	seen := make(map[string]bool)
	for _, ex := range examples {
		if ex.Label == "" {
			return nil, ErrEmptyLabel
		}
		if !seen[ex.Label] {
			seen[ex.Label] = true
			classes = append(classes, bayesian.Class(ex.Label))
		}
	}
	if len(classes) < 2 {
		return nil, ErrTooFewLabels
	}

	nb := &NaiveBayes{
		model: bayesian.NewClassifier(classes...),
		vocab: make(map[string]struct{}),
	}
	for _, ex := range examples {
		tokens := Tokenize(ex.Text)
		for _, tok := range tokens {
			nb.vocab[tok] = struct{}{}
		}
		nb.model.Learn(tokens, bayesian.Class(ex.Label))
	}

	return nb, nil
}

// Classify returns the most likely label for text. Tokens never seen during
// training are ignored; if none are left, ok is false. Text made only of
// unseen words therefore gets no label instead of the class with the largest
// prior, so callers fall back to their own default.
func (nb *NaiveBayes) Classify(text string) (label string, ok bool) {
	var known []string
	for _, tok := range Tokenize(text) {
		if _, hit := nb.vocab[tok]; hit {
			known = append(known, tok)
		}
	}
	if len(known) == 0 {
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			label, ok = "", false
		}
	}()

	_, inx, _ := nb.model.LogScores(known)
	if inx < 0 || inx >= len(nb.model.Classes) {
		return "", false
	}
	return string(nb.model.Classes[inx]), true
}
