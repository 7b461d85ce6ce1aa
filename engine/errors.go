package engine

import "github.com/pkg/errors"

// Validation errors. Rejected before any mutation; the caller can retry
// with corrected input.
var (
	ErrBadPosition         = errors.New("position index out of range")
	ErrZeroAmount          = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient free balance")
	ErrNotInitialized      = errors.New("board not initialized")
	ErrAlreadyInitialized  = errors.New("board already initialized")
	ErrUnknownMiner        = errors.New("unknown miner")
	ErrUnknownRound        = errors.New("unknown round")
	ErrNothingToClaim      = errors.New("nothing to claim")
)

// Sequencing errors. The caller must perform a prerequisite operation
// first (e.g. checkpoint before depositing into a new round).
var (
	ErrUnsettledPriorRound = errors.New("prior round not settled")
	ErrRoundNotEnded       = errors.New("round not ended")
	ErrRoundClosed         = errors.New("round closed")
	ErrAlreadyPredicted    = errors.New("prediction already submitted")
	ErrWindowOpen          = errors.New("settlement window still open")
)

// Arithmetic errors. Fatal for the operation; checked before any write.
var (
	ErrOverflow = errors.New("arithmetic overflow")
)

var validationErrs = []error{
	ErrBadPosition, ErrZeroAmount, ErrInsufficientBalance,
	ErrNotInitialized, ErrAlreadyInitialized, ErrUnknownMiner,
	ErrUnknownRound, ErrNothingToClaim,
}

var sequencingErrs = []error{
	ErrUnsettledPriorRound, ErrRoundNotEnded, ErrRoundClosed,
	ErrAlreadyPredicted, ErrWindowOpen,
}

func matchAny(err error, causes []error) bool {
	for _, cause := range causes {
		if errors.Is(err, cause) {
			return true
		}
	}
	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return matchAny(err, validationErrs) }

// IsSequencing reports whether err signals a missing prerequisite
// operation. Automation layers should auto-sequence these.
func IsSequencing(err error) bool { return matchAny(err, sequencingErrs) }

// IsArithmetic reports whether err is an arithmetic failure.
func IsArithmetic(err error) bool { return errors.Is(err, ErrOverflow) }
