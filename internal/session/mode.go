package session

import "github.com/google/uuid"

// Mode is the state of the form: Idle, Creating or Editing.
type Mode interface {
	isMode()
}

type Idle struct{}

type Creating struct{}

type Editing struct {
	TaskID uuid.UUID
}

func (Idle) isMode()     {}
func (Creating) isMode() {}
func (Editing) isMode()  {}
