package domain

import "time"

type SubmissionId = string

// Collection names in the document store.
const (
	AdminsCollection    = "admins"
	ContactsCollection  = "contacts"
	InquiriesCollection = "inquiries"
)

type Contact struct {
	Id        SubmissionId `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	ContactNo string       `json:"contactNo"`
	Company   string       `json:"company"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`
}

type Inquiry struct {
	Id        SubmissionId `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Mobile    string       `json:"mobile"`
	Company   string       `json:"company"`
	Capacity  string       `json:"capacity"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`
}
