package header

// Common field names as byte slices for allocation-free calls.
var (
	HeaderHost            = []byte("Host")
	HeaderDate            = []byte("Date")
	HeaderServer          = []byte("Server")
	HeaderUserAgent       = []byte("User-Agent")
	HeaderAccept          = []byte("Accept")
	HeaderConnection      = []byte("Connection")
	HeaderContentType     = []byte("Content-Type")
	HeaderContentLength   = []byte("Content-Length")
	HeaderLastModified    = []byte("Last-Modified")
	HeaderIfModifiedSince = []byte("If-Modified-Since")
	HeaderExpires         = []byte("Expires")
	HeaderCacheControl    = []byte("Cache-Control")
)
