// Package contenttype holds common Content-Type values, after Mozilla's table of common MIME types.
package contenttype

const (
	CSS   = "text/css"
	CSV   = "text/csv"
	GIF   = "image/gif"
	HTML  = "text/html"
	ICO   = "image/vnd.microsoft.icon"
	JPEG  = "image/jpeg"
	JS    = "text/javascript"
	JSON  = "application/json"
	MD    = "text/markdown"
	PDF   = "application/pdf"
	PNG   = "image/png"
	SVG   = "image/svg+xml"
	TXT   = "text/plain"
	WEBP  = "image/webp"
	WOFF2 = "font/woff2"
	XML   = "application/xml"
	BIN   = "application/octet-stream" // any kind of binary data
)
