package client

import (
	"errors"

	"github.com/dmitrijs2005/weekjournal/internal/common"
)

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = common.ErrorUnauthorized
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
