package model

import "time"

// PlayerID uniquely identifies a player
type PlayerID string

// Player is a guest player of the hosted game
type Player struct {
	ID          PlayerID  `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
