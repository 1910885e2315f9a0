package samplesheet

import "errors"

var (
	ErrInputNotFound         = errors.New("input path doesn't exist")
	ErrOutputAlreadyExists   = errors.New("output path already exists")
	ErrMissingReadLength     = errors.New("no read length found")
	ErrMissingLibraryPrepKit = errors.New("LibraryPrepKit not found in [Header]")
	ErrUnknownLibraryPrepKit = errors.New("unknown LibraryPrepKit")
	ErrMissingIndexColumn    = errors.New("Index2Sequence column not found")
	ErrMissingSegment        = errors.New("segment not found")
	ErrMalformedSegment      = errors.New("line outside of any segment")
	ErrMalformedRow          = errors.New("malformed data row")
	ErrMalformedAdapterTable = errors.New("malformed adapter table")
)
