package thermo

import (
	"net/http"

	"github.com/ansel1/merry"
)

// The engine fails in exactly two ways. HTTP codes ride along on the classes
// so transport layers can map an error without inspecting it.
var (
	// ErrInvalidInput covers missing or non-positive mandatory fields,
	// non-positive optional fields and non-positive derived ratios.
	ErrInvalidInput = merry.New("invalid input").WithHTTPCode(http.StatusBadRequest)

	// ErrUnknownEntity covers unrecognized process kinds and substance keys,
	// and substances whose properties stay incomplete after normalization.
	ErrUnknownEntity = merry.New("unknown entity").WithHTTPCode(http.StatusNotFound)
)
