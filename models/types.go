package models

// Request types

// RollDiceRequest carries an optional target. Bonus is the field name used by
// older clients and only applies when Modifier is absent.
type RollDiceRequest struct {
	Modifier *int `json:"modifier"`
	Bonus    *int `json:"bonus"`
	Target   *int `json:"target"`
}

// StuntRequest is the body for both create and update.
type StuntRequest struct {
	Name        string  `json:"name"`
	Cost        Cost    `json:"cost"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Setting     *string `json:"setting"`
}

// Response types

// RollDiceResponse field names are part of the public contract; do not add fields.
type RollDiceResponse struct {
	BlueDice    [2]int `json:"blue_dice"`
	RedDie      int    `json:"red_die"`
	Total       int    `json:"total"`
	Bonus       int    `json:"bonus"`
	StuntPoints int    `json:"stunt_points"`
	HasDoubles  bool   `json:"has_doubles"`
	Target      *int   `json:"target"`
	Success     *bool  `json:"success"`
	Display     string `json:"display"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Domain types

// Stunt is one present row of the stunt workbook. ID is positional and only
// valid until the next mutation.
type Stunt struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Cost        Cost    `json:"cost"`
	Category    string  `json:"category"`
	Setting     *string `json:"setting"`
	Description string  `json:"description"`
}

// StuntFields are the stored columns of a stunt plus the category it belongs to.
type StuntFields struct {
	Category    string
	Name        string
	Cost        Cost
	Description string
	Setting     *string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
