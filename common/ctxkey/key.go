package ctxkey

const (
	// KeyRequestBody caches the raw request body so it can be read more than once.
	// Set in: common.GetRequestBody.
	// Read in: common.UnmarshalBodyReusable and the panic recovery middleware.
	KeyRequestBody = "key_request_body"

	// RequestModels holds the model identifiers an API request asked for.
	// Set in: controller council handlers before the fan-out.
	// Read in: middleware.PanicRecover for the panic log line.
	RequestModels = "request_models"
)
