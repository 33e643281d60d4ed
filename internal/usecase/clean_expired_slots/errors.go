package clean_expired_slots

import "errors"

var (
	// ErrInvalidRetention возвращается, когда срок хранения не положительный
	ErrInvalidRetention = errors.New("clean_expired_slots: retention months must be positive")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("clean_expired_slots: internal error")
)
