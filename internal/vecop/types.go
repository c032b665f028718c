package vecop

import (
	"fmt"
	"strings"
)

// ElementType is the lane type of a vector.
type ElementType uint8

const (
	Float32 ElementType = iota
	Float64
)

func (t ElementType) String() string {
	switch t {
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return fmt.Sprintf("ElementType(%d)", uint8(t))
	}
}

// Size returns the lane size in bytes.
func (t ElementType) Size() int {
	if t == Float64 {
		return 8
	}
	return 4
}

// ParseElementType accepts the command-line names "float" and "double".
func ParseElementType(s string) (ElementType, error) {
	switch s {
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	default:
		return 0, newError(ErrInvalidType, "Bad type : float | double")
	}
}

// Operator is an arithmetic operator, identified by its character.
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

// Operators lists the supported operators in kernel-table order.
var Operators = [...]Operator{Add, Subtract, Multiply, Divide}

const numOperators = len(Operators)

func (op Operator) String() string {
	return string(rune(op))
}

// Valid reports whether op is one of + - * /.
func (op Operator) Valid() bool {
	return op.index() >= 0
}

func (op Operator) index() int {
	switch op {
	case Add:
		return 0
	case Subtract:
		return 1
	case Multiply:
		return 2
	case Divide:
		return 3
	default:
		return -1
	}
}

// ParseOperator takes the first character of s. Validation is left to the
// dispatcher so that the error can name the requested width.
func ParseOperator(s string) Operator {
	if s == "" {
		return 0
	}
	return Operator(s[0])
}

// Width is the number of lanes in a vector.
type Width int

// Widths is every width the dispatcher knows about.
var Widths = [...]Width{2, 4, 8, 16}

// Known reports whether w is one of 2, 4, 8 or 16.
func (w Width) Known() bool {
	switch w {
	case 2, 4, 8, 16:
		return true
	}
	return false
}

// Bits returns the register size a vector of w lanes of t occupies.
func (w Width) Bits(t ElementType) int {
	return int(w) * t.Size() * 8
}

// ParseWidth reads a base-10 width the way strtoll(s, NULL, 10) does:
// optional leading space and sign, then the longest run of digits. Text
// without digits yields 0, which no type accepts.
func ParseWidth(s string) Width {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > 1<<20 {
			// Large enough to be rejected; stop before overflowing.
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return Width(n)
}

// ValidWidths returns the widths t accepts under any policy.
func ValidWidths(t ElementType) []Width {
	if t == Float64 {
		return []Width{2, 4, 8}
	}
	return []Width{2, 4, 8, 16}
}
