package request

type CreateAddonRequest struct {
	Type  string  `json:"type" validate:"required,oneof=CAR_WASH EV_CHARGING"`
	Notes *string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateAddonStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS DONE"`
}
