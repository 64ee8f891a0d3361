package consts

const (
	JSONWebTokenHeaderKeyIdentifier = "kid"
	JSONWebTokenHeaderAlgorithm     = "alg"
	JSONWebTokenHeaderType          = "typ"
)

const (
	JSONWebTokenUseSignature  = "sig"
	JSONWebTokenUseEncryption = valueEnc
)

const (
	JSONWebTokenAlgNone = valueNone
)
