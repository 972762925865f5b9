package domain

// RequestMeta carries what the notification channels need to know about the originating request.
type RequestMeta struct {
	Referer  string
	ClientIP string
}
