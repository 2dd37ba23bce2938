package history

import "time"

// Entry adalah satu baris riwayat analisa di sisi client.
type Entry struct {
	ID       string    `json:"id"`
	FileName string    `json:"fileName"`
	Preview  string    `json:"preview,omitempty"`
	Detected string    `json:"detected"`
	Code     string    `json:"code"`
	Source   string    `json:"source"`
	At       time.Time `json:"at"`
}

// Profile holds the flat user fields of the local auth stub. There is no
// server-side account behind these; Authed is just a flag the client sets.
type Profile struct {
	Email    string `json:"email"`
	CarModel string `json:"carModel"`
	Authed   bool   `json:"authed"`
}
