package commands

// UserError represents an error that should be displayed to the player.
// These are not system failures - just input the game doesn't understand.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a player-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}
