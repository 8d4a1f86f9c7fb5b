package reflow

import "errors"

var ErrConfig = errors.New("invalid reflow config")
