package ast

import "surgelint/internal/source"

// File is the root node of one parsed compilation unit.
type File struct {
	Source source.FileID
	Items  []ItemID
	Span   source.Span
}
