package monoclient

import "strings"

// APIServer holds the base address of a Monobank API deployment and builds
// request URLs from relative paths. The zero value is not usable; construct
// one with APIServerFromBase.
type APIServer struct {
	base string
}

// Production is the public Monobank API endpoint.
var Production = APIServerFromBase("https://api.monobank.ua")

// APIServerFromBase normalizes the base address so that joining a path never
// produces a doubled or missing separator.
func APIServerFromBase(base string) APIServer {
	return APIServer{base: strings.TrimRight(strings.TrimSpace(base), "/")}
}

// URL joins the server's base address with a relative API path.
func (s APIServer) URL(path string) string {
	return s.base + "/" + strings.TrimLeft(path, "/")
}
