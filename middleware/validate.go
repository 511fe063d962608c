package middleware

import (
	"errors"

	"discussion-board/helper"
	"discussion-board/pipeline"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// ValidateDiscussion checks a bound discussion form. A rejected form sets
// Skip and FormErrors so later steps fall through to the form view.
func ValidateDiscussion(h *helper.HTTPHelper) pipeline.Step {
	return func(c *gin.Context, st *pipeline.State) pipeline.Outcome {
		err := h.Validate.Struct(st.Form.Input())
		if err == nil {
			return pipeline.Next()
		}

		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return pipeline.Fail(err)
		}

		st.Skip = true
		st.FormErrors = h.ValidationMessages(validationErrors)
		return pipeline.Next()
	}
}
