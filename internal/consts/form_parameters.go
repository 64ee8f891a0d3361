package consts

const (
	FormParameterState        = valueState
	FormParameterClientID     = valueClientID
	FormParameterRequest      = "request"
	FormParameterRequestURI   = "request_uri"
	FormParameterRedirectURI  = "redirect_uri"
	FormParameterNonce        = valueNonce
	FormParameterResponseMode = "response_mode"
	FormParameterResponseType = "response_type"
	FormParameterScope        = valueScope
	FormParameterAudience     = "audience"
	FormParameterIssuer       = valueIss
	FormParameterError        = "error"
	FormParameterErrorHint    = "error_hint"
	FormParameterErrorDebug   = "error_debug"
	FormParameterMaximumAge   = "max_age"
	FormParameterPrompt       = "prompt"
	FormParameterDisplay      = "display"
	FormParameterIDTokenHint  = "id_token_hint"

	FormParameterErrorDescription                          = "error_description"
	FormParameterAuthenticationContextClassReferenceValues = "acr_values"
)
