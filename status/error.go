package status

// Empty - Custom error to inform that the container holds no elements to act upon
type Empty struct {
	msg string
}

// Error - Used to notify that the container is empty
func (E Empty) Error() string {
	if E.msg == "" {
		return "container empty"
	}
	return E.msg
}

// Is - Makes errors.Is match any Empty regardless of message
func (E Empty) Is(target error) bool {
	_, ok := target.(Empty)
	return ok
}

// Full - Custom error to inform that the container has reached its capacity and can't take more elements
type Full struct {
	msg string
}

// Error - Used to notify that the container is full
func (F Full) Error() string {
	if F.msg == "" {
		return "container full"
	}
	return F.msg
}

// Is - Makes errors.Is match any Full regardless of message
func (F Full) Is(target error) bool {
	_, ok := target.(Full)
	return ok
}

// OutOfRange - Custom error to inform that an index is outside the valid range
type OutOfRange struct {
	msg string
}

// Error - Used to notify that an index was out of range
func (O OutOfRange) Error() string {
	if O.msg == "" {
		return "index out of range"
	}
	return O.msg
}

// Is - Makes errors.Is match any OutOfRange regardless of message
func (O OutOfRange) Is(target error) bool {
	_, ok := target.(OutOfRange)
	return ok
}

// NotFound - Custom error to inform that no element or key was found
type NotFound struct {
	msg string
}

// Error - Used to notify that nothing was found
func (N NotFound) Error() string {
	if N.msg == "" {
		return "no record found"
	}
	return N.msg
}

// Is - Makes errors.Is match any NotFound regardless of message
func (N NotFound) Is(target error) bool {
	_, ok := target.(NotFound)
	return ok
}

// AlreadyPresent - Custom error to inform that an element already exists in a container that refuses duplicates
type AlreadyPresent struct {
	msg string
}

// Error - Used to notify that the element already exists
func (A AlreadyPresent) Error() string {
	if A.msg == "" {
		return "element already present"
	}
	return A.msg
}

// Is - Makes errors.Is match any AlreadyPresent regardless of message
func (A AlreadyPresent) Is(target error) bool {
	_, ok := target.(AlreadyPresent)
	return ok
}

// Collision - Custom error to inform that the addressed slot is occupied by a different key.
// There is no probing, so the collision is terminal for the requested key.
type Collision struct {
	msg string
}

// Error - Used to notify that a slot collision occurred
func (C Collision) Error() string {
	if C.msg == "" {
		return "slot occupied by another key"
	}
	return C.msg
}

// Is - Makes errors.Is match any Collision regardless of message
func (C Collision) Is(target error) bool {
	_, ok := target.(Collision)
	return ok
}

// NewEmpty - Returns an Empty error with a custom message
func NewEmpty(msg string) Empty { return Empty{msg: msg} }

// NewFull - Returns a Full error with a custom message
func NewFull(msg string) Full { return Full{msg: msg} }

// NewOutOfRange - Returns an OutOfRange error with a custom message
func NewOutOfRange(msg string) OutOfRange { return OutOfRange{msg: msg} }

// NewNotFound - Returns a NotFound error with a custom message
func NewNotFound(msg string) NotFound { return NotFound{msg: msg} }

// NewAlreadyPresent - Returns an AlreadyPresent error with a custom message
func NewAlreadyPresent(msg string) AlreadyPresent { return AlreadyPresent{msg: msg} }

// NewCollision - Returns a Collision error with a custom message
func NewCollision(msg string) Collision { return Collision{msg: msg} }
