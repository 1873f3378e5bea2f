package types

import "errors"

var (
	// ErrWrongEntryAmount the participate amount does not match the
	// fixed entry price.
	ErrWrongEntryAmount = errors.New("ErrWrongEntryAmount")
	// ErrAlreadyJoined the address already holds an entry in the game.
	ErrAlreadyJoined = errors.New("ErrAlreadyJoined")
	// ErrEndorsementPending the game has not collected its required
	// endorsements yet.
	ErrEndorsementPending = errors.New("ErrEndorsementPending")
	// ErrGameOver the game already completed.
	ErrGameOver = errors.New("ErrGameOver")
	// ErrGameCancelled the game was cancelled.
	ErrGameCancelled = errors.New("ErrGameCancelled")
	// ErrNotOwner the caller does not own the game.
	ErrNotOwner = errors.New("ErrNotOwner")
	// ErrGameNotCancelled refunds only run on cancelled games.
	ErrGameNotCancelled = errors.New("ErrGameNotCancelled")
	// ErrNotParticipant the address holds no entry in the game.
	ErrNotParticipant = errors.New("ErrNotParticipant")
	// ErrAlreadyRefunded the entry or endorsement was refunded before.
	ErrAlreadyRefunded = errors.New("ErrAlreadyRefunded")
	// ErrGameNotComplete payouts only run on completed games.
	ErrGameNotComplete = errors.New("ErrGameNotComplete")
	// ErrNotBeneficiary the caller is not the game beneficiary.
	ErrNotBeneficiary = errors.New("ErrNotBeneficiary")
	// ErrAlreadyWithdrawn the beneficiary already withdrew.
	ErrAlreadyWithdrawn = errors.New("ErrAlreadyWithdrawn")
	// ErrNotWinner the address did not win.
	ErrNotWinner = errors.New("ErrNotWinner")
	// ErrPrizeAlreadyClaimed the prize was claimed before.
	ErrPrizeAlreadyClaimed = errors.New("ErrPrizeAlreadyClaimed")
	// ErrNoEndorsers the game finished without endorsers.
	ErrNoEndorsers = errors.New("ErrNoEndorsers")
	// ErrNotEndorser the address never endorsed the game.
	ErrNotEndorser = errors.New("ErrNotEndorser")
	// ErrFeeAlreadyClaimed the endorsement fee was claimed before.
	ErrFeeAlreadyClaimed = errors.New("ErrFeeAlreadyClaimed")
	// ErrAlreadyEndorsed the address already endorsed the game.
	ErrAlreadyEndorsed = errors.New("ErrAlreadyEndorsed")
	// ErrEndorseNotRequired the game runs without endorsements.
	ErrEndorseNotRequired = errors.New("ErrEndorseNotRequired")
	// ErrBeneficiaryNotVerified verified-only mode rejected the
	// beneficiary.
	ErrBeneficiaryNotVerified = errors.New("ErrBeneficiaryNotVerified")
	// ErrGameNotFound no game under the given id.
	ErrGameNotFound = errors.New("ErrGameNotFound")
	// ErrInvalidGameParam create parameters out of range.
	ErrInvalidGameParam = errors.New("ErrInvalidGameParam")
)
