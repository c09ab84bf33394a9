package consts

// Response Mode strings.
const (
	ResponseModeFormPost = "form_post"
	ResponseModeQuery    = "query"
	ResponseModeFragment = "fragment"
)
