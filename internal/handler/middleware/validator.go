package middleware

import (
	"hotel-booking/internal/domain/room"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain rules used in request binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("room_category", func(fl validator.FieldLevel) bool {
		_, err := room.ParseCategory(fl.Field().String())
		return err == nil
	})
}
