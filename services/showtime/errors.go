package showtime

import "fmt"

// NotFoundError signals a showtime lookup miss.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("showtime with id %s not found", e.ID)
}
