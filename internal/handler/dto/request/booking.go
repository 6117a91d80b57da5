package request

type QuoteRequest struct {
	SeatIDs []string `json:"seatIds" binding:"required,min=1,dive,required"`
}

type CreateBookingRequest struct {
	SeatIDs       []string `json:"seatIds" binding:"required,min=1,dive,required"`
	PaymentMethod string   `json:"paymentMethod" binding:"required,max=50"`
	QuoteToken    string   `json:"quoteToken,omitempty"`
}
