package consts

const (
	HeaderContentType    = "Content-Type"
	HeaderCacheControl   = "Cache-Control"
	HeaderPragma         = "Pragma"
	HeaderLocation       = "Location"
	HeaderSetCookie      = "Set-Cookie"
	HeaderAcceptLanguage = "Accept-Language"
)

const (
	ContentTypeApplicationJSON = "application/json; charset=utf-8"
	ContentTypeTextHTML        = "text/html; charset=utf-8"
)

const (
	PragmaNoCache       = "no-cache"
	CacheControlNoStore = "no-store"
)

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)
