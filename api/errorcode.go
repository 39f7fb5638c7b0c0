package api

import "github.com/symtoscan/symtoscan-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "The email address is not valid. Please check the format.",
		1101: "No account found with this email. Please sign up first.",
		1102: "Incorrect password. Please try again.",
		1103: "An account with this email address already exists. Please log in.",
		1104: "The password is too weak. It must be at least 6 characters long.",
		1105: "Access to this account has been temporarily disabled due to many failed login attempts. You can try again later.",
		1106: "This user account has been disabled by an administrator.",
		1107: "The credential provided is invalid. Please check your email and password.",

		1200: "Please enter symptoms or provide an image.",
		1201: "You can only upload a maximum of 3 images.",
		1202: "An error occurred during the analysis. Please try again.",
		1203: "Could not save scan to history.",
		1204: "Could not process the captured images.",

		1300: "Please enter a valid age.",
		1301: store.ErrProfileNotFound.Error(),
		1302: "Please enter a display name.",
		1303: store.ErrInvalidTheme.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorInvalidEmail      = errorJSON(1100)
	errorAccountNotFound   = errorJSON(1101)
	errorWrongPassword     = errorJSON(1102)
	errorEmailTaken        = errorJSON(1103)
	errorWeakPassword      = errorJSON(1104)
	errorTooManyRequests   = errorJSON(1105)
	errorAccountDisabled   = errorJSON(1106)
	errorInvalidCredential = errorJSON(1107)

	errorEmptyScanInput = errorJSON(1200)
	errorTooManyImages  = errorJSON(1201)
	errorAnalysisFailed = errorJSON(1202)
	errorScanNotSaved   = errorJSON(1203)
	errorBadImageData   = errorJSON(1204)

	errorInvalidAge         = errorJSON(1300)
	errorProfileNotFound    = errorJSON(1301)
	errorMissingDisplayName = errorJSON(1302)
	errorInvalidTheme       = errorJSON(1303)
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
