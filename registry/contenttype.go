package registry

// ContentTypeForFormat maps a Format ID to the MIME type the HTTP surface
// (C6) sets on generated record responses.
func ContentTypeForFormat(formatID string) string {
	switch formatID {
	case "onix_3.0", "onix_2.1", "crossref":
		return "text/xml"
	case "csv":
		return "text/csv"
	case "bibtex":
		return "application/x-bibtex"
	case "kbart":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
