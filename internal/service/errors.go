package service

import "errors"

var (
	ErrRunNotFound      = errors.New("run not found")
	ErrRunNotYours      = errors.New("run belongs to another player")
	ErrRunOver          = errors.New("run is already over")
	ErrNotInCombat      = errors.New("no combat in progress")
	ErrAlreadyInCombat  = errors.New("combat already in progress")
	ErrNotYourTurn      = errors.New("it is not a party member's turn")
	ErrActionRejected   = errors.New("action cannot be taken")
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrPartySize        = errors.New("party must have between one and four members")
	ErrDeepestFloor     = errors.New("there is nothing below the final floor")
)
