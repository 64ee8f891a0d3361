package consts

const (
	ScopeOpenID = "openid"
)
