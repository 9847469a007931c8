// Package textedit provides byte-range text edits and the logic to apply them.
package textedit

// Edit represents a single replacement in a document.
type Edit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int

	// End is the byte index where the edit ends (exclusive).
	End int

	// NewText is the replacement text.
	NewText string
}

// IsInsert reports whether the edit replaces an empty range.
func (e Edit) IsInsert() bool {
	return e.Start == e.End
}

// Delta returns how much the edit changes the document length.
func (e Edit) Delta() int {
	return len(e.NewText) - (e.End - e.Start)
}

// Builder accumulates edits against one document.
type Builder struct {
	Edits []Edit
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		Edits: make([]Edit, 0, 2),
	}
}

// Replace adds an edit that replaces bytes [start, end) with newText.
func (b *Builder) Replace(start, end int, newText string) {
	b.Edits = append(b.Edits, Edit{
		Start:   start,
		End:     end,
		NewText: newText,
	})
}

// Insert adds an edit that inserts text at offset.
func (b *Builder) Insert(offset int, text string) {
	b.Replace(offset, offset, text)
}

// Delete adds an edit that removes bytes [start, end).
func (b *Builder) Delete(start, end int) {
	b.Replace(start, end, "")
}

// Apply prepares the accumulated edits and applies them to content.
func (b *Builder) Apply(content string) (string, error) {
	edits, err := Prepare(b.Edits, len(content))
	if err != nil {
		return "", err
	}
	return Apply(content, edits), nil
}
