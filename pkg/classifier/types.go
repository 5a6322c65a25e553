package classifier

// Example is one labelled training document.
type Example struct {
	Text  string
	Label string
}
