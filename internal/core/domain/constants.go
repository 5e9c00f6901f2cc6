package domain

import "errors"

// ApplicationChannel is the channel whose attachment posts are treated as membership applications.
const ApplicationChannel = "member-apps"

var (
	ErrBadArguments        = errors.New("bad arguments")
	ErrUnauthorized        = errors.New("not authorized")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyReviewed     = errors.New("application already reviewed")
	ErrNoAttachment        = errors.New("message has no attachment")
)
