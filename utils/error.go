package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// DetailResponse is the body of 401 responses.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// FieldError describes one structural problem with a request.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationResponse is the body of 422 responses.
type ValidationResponse struct {
	Detail []FieldError `json:"detail"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// Unauthorized aborts the request with a generic 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, DetailResponse{Detail: "Unauthorized"})
}

// ValidationError aborts the request with a 422 describing why binding failed.
// location is "body" or "query".
func ValidationError(c *gin.Context, location string, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationResponse{
		Detail: FieldErrors(location, err),
	})
}

// ParamError ties a parse failure to the request parameter it came from.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return e.Param + ": " + e.Err.Error()
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// FieldErrors converts a gin binding error into per-field entries.
func FieldErrors(location string, err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Loc:  []string{location, fe.Field()},
				Msg:  validationMessage(fe),
				Type: fe.Tag(),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			// The top-level value is not an object.
			msg := "Input should be a valid dictionary"
			if typeErr.Type.Kind() != reflect.Struct {
				msg = "Input should be a valid " + typeErr.Type.String()
			}
			return []FieldError{{
				Loc:  []string{location},
				Msg:  msg,
				Type: "type_error",
			}}
		}
		return []FieldError{{
			Loc:  []string{location, typeErr.Field},
			Msg:  "Input should be a valid " + typeErr.Type.String(),
			Type: "type_error",
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []FieldError{{
			Loc:  []string{location},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		loc := []string{location}
		var paramErr *ParamError
		if errors.As(err, &paramErr) {
			loc = append(loc, paramErr.Param)
		}
		return []FieldError{{
			Loc:  loc,
			Msg:  "Input should be a valid number, unable to parse " + strconv.Quote(numErr.Num),
			Type: "float_parsing",
		}}
	}

	return []FieldError{{
		Loc:  []string{location},
		Msg:  err.Error(),
		Type: "value_error",
	}}
}

func validationMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "Field required"
	}
	return "Failed on the '" + fe.Tag() + "' rule"
}
