package api

// Request DTOs. Values are trimmed before the validate tags are checked.

type ContactRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	ContactNo string `json:"contactNo" validate:"required"`
	Company   string `json:"company"`
	Message   string `json:"message" validate:"required"`
}

type InquiryRequest struct {
	Name     string `json:"name" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Company  string `json:"company"`
	Capacity string `json:"capacity"`
	Message  string `json:"message" validate:"required"`
}

// Response DTOs

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
