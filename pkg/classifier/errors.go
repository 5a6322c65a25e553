package classifier

import "errors"

var (
	ErrNoExamples   = errors.New("classifier: no training examples")
	ErrTooFewLabels = errors.New("classifier: at least two distinct labels are required")
	ErrEmptyLabel   = errors.New("classifier: example has an empty label")
)
