package console

// Table pairs a Prompter with a Display so one value can ask questions and
// show events on the same terminal
type Table struct {
	*Prompter
	*Display
}

// NewTable combines a prompter and a display
func NewTable(prompter *Prompter, display *Display) *Table {
	return &Table{Prompter: prompter, Display: display}
}
