package ast

type (
	// FileID identifies a parsed file node.
	FileID uint32
	// ItemID identifies a top-level item.
	ItemID uint32
	// ConstID identifies a const item payload.
	ConstID uint32
	// TypeDeclID identifies a type item payload.
	TypeDeclID uint32
	// FieldID identifies a struct field.
	FieldID uint32
	// AttrID identifies an attribute.
	AttrID uint32
	// TypeID identifies a type expression.
	TypeID uint32
	// ExprID identifies a value expression.
	ExprID uint32
)

const (
	NoFileID     FileID     = 0
	NoItemID     ItemID     = 0
	NoConstID    ConstID    = 0
	NoTypeDeclID TypeDeclID = 0
	NoFieldID    FieldID    = 0
	NoAttrID     AttrID     = 0
	NoTypeID     TypeID     = 0
	NoExprID     ExprID     = 0
)

func (id FileID) IsValid() bool     { return id != NoFileID }
func (id ItemID) IsValid() bool     { return id != NoItemID }
func (id ConstID) IsValid() bool    { return id != NoConstID }
func (id TypeDeclID) IsValid() bool { return id != NoTypeDeclID }
func (id FieldID) IsValid() bool    { return id != NoFieldID }
func (id AttrID) IsValid() bool     { return id != NoAttrID }
func (id TypeID) IsValid() bool     { return id != NoTypeID }
func (id ExprID) IsValid() bool     { return id != NoExprID }
