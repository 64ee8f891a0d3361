package consts

// Registered Claim strings. See https://www.iana.org/assignments/jwt/jwt.xhtml.
const (
	ClaimJWTID            = "jti"
	ClaimIssuedAt         = "iat"
	ClaimNotBefore        = "nbf"
	ClaimExpirationTime   = "exp"
	ClaimIssuer           = valueIss
	ClaimSubject          = "sub"
	ClaimAudience         = "aud"
	ClaimClientIdentifier = valueClientID
	ClaimScope            = valueScope
	ClaimNonce            = valueNonce
	ClaimState            = valueState
)
