package consts

// Diagnostic event component and action tags.
const (
	DiagnosticComponentOAuthInboundService = "oauth-inbound-service"

	DiagnosticActionParseRequestObject             = "parse-request-object"
	DiagnosticActionValidateRequestObjectSignature = "validate-request-object-signature"
)

// Diagnostic event parameter and configuration keys.
const (
	DiagnosticParamClientID = "clientId"

	DiagnosticConfigRequestObjectSignatureValidationEnabled = "requestObjectSignatureValidationEnabled"
)

// Builder registry keys.
const (
	BuilderKeyRequestParamValue    = "request_param_value_builder"
	BuilderKeyRequestURIParamValue = "request_uri_param_value_builder"
)
