package io

import (
	"errors"

	"github.com/ezrec/bef93/translate"
)

var f = translate.From

var (
	// Device errors
	ErrWrite = errors.New(f("write failed"))
)
