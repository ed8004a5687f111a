package service

import "errors"

// ErrDuplicateReview marks a submission rejected because the same name and
// email already reviewed within the 24-hour window.
var ErrDuplicateReview = errors.New("duplicate review within 24 hours")
