package handlers

import "strings"

var allowedImageExts = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

func allowedImageExt(ext string) bool {
	_, ok := allowedImageExts[strings.ToLower(ext)]
	return ok
}

func contentTypeForExt(ext string) string {
	if ct, ok := allowedImageExts[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}
