package payload

import (
	"mylibrary/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.Email, is.Email),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		Bio:      r.Bio,
	}
}
