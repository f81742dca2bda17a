package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDoubtRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	SeniorAssignedID *uint  `json:"senior_assigned_id,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
}

func (req *CreateDoubtRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required),
	)
}

type AnswerDoubtRequest struct {
	Answer string `json:"answer"`
}

func (req *AnswerDoubtRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Answer, validation.Required),
	)
}
