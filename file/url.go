package file

import (
	"errors"
	"net/url"
	"strings"
)

// ErrUnknownScheme is returned for URIs whose scheme has no public mapping.
var ErrUnknownScheme = errors.New("unknown file uri scheme")

// URLGenerator turns stored file URIs into URLs browsers can fetch.
//
//	public://a/b.jpg   -> <base><public path>/a/b.jpg
//	private://a/b.pdf  -> <base>/system/files/a/b.pdf
//	https://cdn/x.png  -> unchanged
//	a/b.jpg            -> <base>/a/b.jpg
type URLGenerator struct {
	baseURL    string
	publicPath string
}

func NewURLGenerator(baseURL, publicPath string) *URLGenerator {
	publicPath = "/" + strings.Trim(publicPath, "/")
	if publicPath == "/" {
		publicPath = ""
	}
	return &URLGenerator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		publicPath: publicPath,
	}
}

// GenerateAbsoluteString returns the absolute URL for uri.
func (g *URLGenerator) GenerateAbsoluteString(uri string) (string, error) {
	scheme, target, ok := strings.Cut(uri, "://")
	if !ok {
		return g.baseURL + "/" + escapePath(strings.TrimLeft(uri, "/")), nil
	}
	switch strings.ToLower(scheme) {
	case "public":
		return g.baseURL + g.publicPath + "/" + escapePath(target), nil
	case "private":
		return g.baseURL + "/system/files/" + escapePath(target), nil
	case "http", "https":
		return uri, nil
	default:
		return "", ErrUnknownScheme
	}
}

func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
