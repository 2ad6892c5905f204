package images

import "strings"

// CDNTransformSegment is the fixed low-quality transform the image CDN
// understands, inserted between the CDN base URL and the relative path.
const CDNTransformSegment = "/cdn-cgi/image/width=200,quality=5"

// PlaceholderPath is the static asset shown when there is nothing to load
// or the displayed image errors out.
const PlaceholderPath = "/static/images/placeholder.png"

// Resolver derives the two URLs progressive loading needs from a raw,
// possibly relative image path.
type Resolver struct {
	OriginBase string
	CDNBase    string
}

// Resolution holds the origin (full quality) and CDN (low quality) URLs for
// one source path.
type Resolution struct {
	Source string
	Origin string
	CDN    string
}

// Progressive reports whether there is a real low-quality rendition to show
// first. Identical URLs mean no CDN transform is available and the single
// URL is treated as loaded immediately.
func (r Resolution) Progressive() bool {
	return r.Origin != r.CDN && r.Origin != PlaceholderPath
}

func isAbsolute(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "data:")
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// Resolve applies the base-url-prefixing rule to a raw path. Empty input
// resolves straight to the placeholder; absolute input short-circuits both
// URLs to itself.
func (r Resolver) Resolve(src string) Resolution {
	if strings.TrimSpace(src) == "" {
		return Resolution{Source: src, Origin: PlaceholderPath, CDN: PlaceholderPath}
	}
	if isAbsolute(src) {
		return Resolution{Source: src, Origin: src, CDN: src}
	}

	cdnBase := r.CDNBase
	if cdnBase == "" {
		cdnBase = r.OriginBase
	}
	return Resolution{
		Source: src,
		Origin: joinURL(r.OriginBase, src),
		CDN:    joinURL(cdnBase+CDNTransformSegment, src),
	}
}

// IsWebP reports whether the source path names a WebP image; only WebP
// sources get the EXIF orientation pass.
func IsWebP(src string) bool {
	src = strings.ToLower(src)
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	return strings.HasSuffix(src, ".webp")
}
