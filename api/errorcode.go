package api

import "github.com/pariparajuli/geosurvey/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrUsernameTaken.Error(),
		1101: store.ErrInvalidCredential.Error(),
		1102: "user id does not match the token",

		1200: store.ErrSurveyNotFound.Error(),
		1201: "invalid survey",
		1202: "invalid answers",

		1300: "invalid location",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUsernameTaken     = errorJSON(1100)
	errorInvalidCredential = errorJSON(1101)
	errorRequesterMismatch = errorJSON(1102)

	errorSurveyNotFound = errorJSON(1200)
	errorInvalidSurvey  = errorJSON(1201)
	errorInvalidAnswers = errorJSON(1202)

	errorInvalidLocation = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetail keeps the code of e but explains what went wrong
func (e ErrorResponse) withDetail(err error) ErrorResponse {
	return ErrorResponse{
		Code:    e.Code,
		Message: e.Message + ": " + err.Error(),
	}
}
