package match

import (
	"github.com/pkg/errors"
)

var errUnexpectedDieValue = errors.New("dice returned a value outside 1..6")
