package reservation

import "errors"

var (
	ErrInvalidInput  = errors.New("name, email, phone, date, time and blend are required")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime   = errors.New("time must be HH:MM")
	ErrUnknownBlend  = errors.New("blend not found")
	ErrSlotTaken     = errors.New("the requested date and time is already booked")
	ErrInvalidStatus = errors.New("status must be one of PENDING, CONFIRMED, CANCELLED, COMPLETED")
	ErrNotFound      = errors.New("reservation not found")
	ErrInternal      = errors.New("failed to save reservation")
)
