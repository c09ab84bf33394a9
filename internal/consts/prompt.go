package consts

// Prompt strings.
const (
	PromptTypeNone          = valueNone
	PromptTypeLogin         = "login"
	PromptTypeConsent       = "consent"
	PromptTypeSelectAccount = "select_account"
)

// PKCE Challenge Method strings.
const (
	PKCEChallengeMethodPlain  = "plain"
	PKCEChallengeMethodSHA256 = "S256"
)

// Scope strings.
const (
	ScopeOpenID = "openid"
)
