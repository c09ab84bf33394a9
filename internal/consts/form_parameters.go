package consts

const (
	FormParameterState               = "state"
	FormParameterAuthorizationCode   = valueCode
	FormParameterClientID            = valueClientID
	FormParameterRequest             = "request"
	FormParameterRequestURI          = "request_uri"
	FormParameterRedirectURI         = "redirect_uri"
	FormParameterNonce               = valueNonce
	FormParameterResponseMode        = "response_mode"
	FormParameterResponseType        = "response_type"
	FormParameterCodeChallenge       = "code_challenge"
	FormParameterCodeChallengeMethod = "code_challenge_method"
	FormParameterScope               = valueScope
	FormParameterAuthorizationID     = "authorization_id"
	FormParameterError               = "error"
	FormParameterErrorDescription    = "error_description"
	FormParameterMaximumAge          = "max_age"
	FormParameterPrompt              = "prompt"
	FormParameterDisplay             = "display"
	FormParameterIDTokenHint         = "id_token_hint"
	FormParameterIssuer              = valueIss
	FormParameterRegistration        = "registration"
)

const (
	AuthorizeResponseAccessToken  = valueAccessToken
	AuthorizeResponseIDToken      = valueIDToken
	AuthorizeResponseCode         = valueCode
	AuthorizeResponseExpiresIn    = "expires_in"
	AuthorizeResponseScope        = valueScope
	AuthorizeResponseTokenType    = "token_type"
	AuthorizeResponseSessionState = "session_state"
)
