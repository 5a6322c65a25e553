package classifier

// TextClassifier assigns one of its trained labels to free text.
// ok is false when the text carries no evidence the model has seen.
type TextClassifier interface {
	Classify(text string) (label string, ok bool)
}
