package movie

import "fmt"

// NotFoundError signals a movie lookup miss.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie with id %s not found", e.ID)
}
