package forwarder

import "net/http"

// Any origin may call the forwarder and no credentials are checked. Revisit
// before exposing it beyond the app.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
}

func setCORSHeaders(h http.Header) {
	for k, v := range corsHeaders {
		h.Set(k, v)
	}
}
