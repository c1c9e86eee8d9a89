package domain

import "errors"

var (
	ErrUnexpectedStatus = errors.New("unexpected backend status")
	ErrRequestRejected  = errors.New("backend rejected request")
	ErrSecretNotFound   = errors.New("secret not found")
)
