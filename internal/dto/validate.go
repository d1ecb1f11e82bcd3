package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/splittab/splittab_backend/internal/core/domain"
)

// init registers the "sortmode" binding validation so query binding rejects
// unknown sort modes before they reach the services.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sortmode", validSortMode)
	}
}

func validSortMode(fl validator.FieldLevel) bool {
	_, err := domain.ParseTransactionSortMode(fl.Field().String())
	return err == nil
}
