package models

// Account is the persisted resource managed by this API. ID is assigned by
// the store on creation and is immutable afterwards; a zero ID means the
// record has not been persisted yet.
type Account struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  Date   `json:"date_joined"`
}
