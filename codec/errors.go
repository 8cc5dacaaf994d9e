package codec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBool        = errors.New("codec: invalid bool byte")
	ErrVarIntTooLong      = errors.New("codec: varint exceeds value range")
	ErrNonCanonicalVarInt = errors.New("codec: non-canonical varint encoding")
	ErrNegativeLength     = errors.New("codec: negative length prefix")
	ErrInvalidUTF8        = errors.New("codec: string is not valid utf-8")
)

// LimitError reports a length-prefixed field whose encoded byte length
// exceeds the bound declared by its schema. The bound is on the UTF-8
// byte length, not the character count.
type LimitError struct {
	Limit int
	Got   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("codec: length %v exceeds limit %v", e.Got, e.Limit)
}
