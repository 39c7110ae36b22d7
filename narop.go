package narop

import "fmt"

// --- Operator classification -----------------------------------------------

// Assoc is the associativity of an operator symbol. Chain linearization only
// ever touches left-to-right associative operators; right-associative ones
// (assignment and friends) stay binary.
type Assoc int8

// Associativity values for operator symbols.
const (
	LeftToRight Assoc = iota
	RightToLeft
)

func (a Assoc) String() string {
	if a == LeftToRight {
		return "ltr"
	}
	return "rtl"
}

// TypeTag classifies an operand's static type. Overload lookup cares about a
// single distinction: is a user-defined (class- or enum-like) type involved,
// or not. Operands of built-in types never trigger a lookup on their own.
type TypeTag int8

// The two type classes relevant for overload resolution.
const (
	Other TypeTag = iota
	ClassOrEnum
)

func (t TypeTag) String() string {
	if t == ClassOrEnum {
		return "class"
	}
	return "other"
}

// OperandType is the static type of an operand: a type name together with
// its classification.
type OperandType struct {
	Name string
	Tag  TypeTag
}

func (ot OperandType) String() string {
	return fmt.Sprintf("%s·%s", ot.Name, ot.Tag)
}

// TypeOf is a classification callback for leaf operands. It is supplied by
// the surrounding front end; resolution never inspects operand values itself.
type TypeOf func(Operand) OperandType

// --- Operands --------------------------------------------------------------

// Operand values sit at the leaves of expression trees. They are usually
// backed by scanner tokens and therefore look much like one:
//
//    Lexeme  = "waves"     // how the operand appeared in the input
//    Value   = nil         // optional converted value, e.g. 3.1416 for "3.1416"
//    Span    = 67…72       // where in the input stream it occured
//
type Operand interface {
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
