package beneficiary

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("未找到受让人")
	ErrLimit      = errors.New("受让人添加上限为8人")
)

// DuplicateNameError carries the colliding name so the message matches
// the UI copy exactly.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("受让人%s已经存在!", e.Name)
}
