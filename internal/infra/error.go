package infra

import (
	"errors"

	"equiplend/internal/pkg/errs"
)

type CollaboratorErrorKind string

// Collaborator-specific error kinds
const (
	KindNotFound      CollaboratorErrorKind = "NOT_FOUND"
	KindUnreachable   CollaboratorErrorKind = "UNREACHABLE"
	KindUpstreamError CollaboratorErrorKind = "UPSTREAM_ERROR"
	KindDecodeFailure CollaboratorErrorKind = "DECODE_FAILURE"
)

type CollaboratorError struct {
	Kind CollaboratorErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e CollaboratorError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e CollaboratorError) Unwrap() error {
	return e.err
}

// WrapCollabErr tags a collaborator failure with a kind so usecases can
// branch without knowing transport details. Kind defaults to
// UPSTREAM_ERROR.
func WrapCollabErr(msg string, err error, kinds ...CollaboratorErrorKind) error {
	kind := KindUpstreamError
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return CollaboratorError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind CollaboratorErrorKind) bool {
	var e CollaboratorError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
