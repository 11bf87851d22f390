package service

import "errors"

var (
	ErrListConversations = errors.New("cannot list conversations")
	ErrSaveConfiguration = errors.New("cannot save configuration record")
)
