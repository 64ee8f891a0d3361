package consts

const (
	valueScope    = "scope"
	valueClientID = "client_id"
	valueNone     = "none"
	valueIss      = "iss"
	valueNonce    = "nonce"
	valueEnc      = "enc"
	valueState    = "state"
)
