package constant

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

// Response headers
const (
	HEADER_REQUEST_ID        = "X-Request-ID"
	HEADER_FAILED_RECIPIENTS = "X-Failed-Recipients"
)

// Multipart form fields
const (
	FORM_TEMPLATE_FILE = "templateFile"
	FORM_CSV_FILE      = "csvFile"
)
