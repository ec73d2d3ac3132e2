package request

type CreateReviewRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type ReportReviewRequest struct {
	Reason string `json:"reason" validate:"required,min=2,max=500"`
}

type ResolveReportRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}
