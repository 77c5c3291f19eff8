package combat

import "errors"

var (
	ErrNotEnoughArmiesForAttack = errors.New("not enough armies for attack")
	ErrTooManyArmiesContested   = errors.New("too many armies contested for the dice rolled")
	ErrTooManyArmiesMoved       = errors.New("too many armies moved")
	ErrTooFewArmiesMoved        = errors.New("conquest must move in at least one army")
	ErrInvalidLosses            = errors.New("losses do not fit the troops on the board")
	ErrInvalidDieFace           = errors.New("die face out of range")
)
