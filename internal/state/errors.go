package state

import "github.com/pkg/errors"

// Failures reported by the commands of the game. They are wrapped with the details of
// the failure, use errors.Is to test for them.
var (
	ErrUnknownKind      = errors.New("unknown ant type")
	ErrInvalidLocation  = errors.New("invalid location")
	ErrInsufficientFood = errors.New("not enough food")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrNoAnt            = errors.New("no ant at location")
	ErrProtectedLeader  = errors.New("the queen cannot be removed")
)
