package arena

import "github.com/cockroachdb/errors"

// ErrInvalidArgument reports a negative count or an allocation whose size
// cannot be represented. Match it with errors.Is.
var ErrInvalidArgument = errors.New("arena: invalid argument")
