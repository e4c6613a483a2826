package request

type CreateProcessRequest struct {
	Name   string   `json:"name" binding:"required"`
	Stages []string `json:"stages" binding:"required,min=1,dive,required"`
}
