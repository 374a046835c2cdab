package huhforms

import "errors"

var errInvalidDueDate = errors.New("use YYYY-MM-DD, e.g. 2025-01-31")
