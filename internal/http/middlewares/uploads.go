package middlewares

import "github.com/gin-gonic/gin"

const ctxUploadedImageKey = "upload.imageURL"

// The file-upload collaborator runs before the profile handlers and leaves
// the resolved URL of an attached image on the context. Nothing in this
// service performs the upload itself.

func SetUploadedImage(c *gin.Context, url string) {
	c.Set(ctxUploadedImageKey, url)
}

func UploadedImageFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUploadedImageKey)
	if !ok {
		return "", false
	}
	url, ok := v.(string)
	if !ok || url == "" {
		return "", false
	}
	return url, true
}
