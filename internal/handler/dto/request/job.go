package request

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft open closed"`
}

type CreateJDRequest struct {
	Position    string `json:"position" binding:"required"`
	Requirement string `json:"requirement"`
}

type UpdateJDRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=requested drafted approved"`
}
