package request

type CreateBookingRequest struct {
	ShowID        string `json:"show_id" validate:"required,max=64"`
	CustomerName  string `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,max=32"`
	Seats         []int  `json:"seats" validate:"required,min=1"`
}
