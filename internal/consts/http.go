package consts

const (
	HeaderContentType    = "Content-Type"
	HeaderAccept         = "Accept"
	HeaderAcceptLanguage = "Accept-Language"
)

const (
	ContentTypeApplicationURLEncodedForm = "application/x-www-form-urlencoded"
	ContentTypeApplicationJSON           = "application/json; charset=utf-8"
	ContentTypeApplicationJWT            = "application/jwt"
	ContentTypeApplicationJOSE           = "application/oauth-authz-req+jwt"
	ContentTypeApplicationJWKSet         = "application/jwk-set+json"
)

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)
