package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// allow answers an OPTIONS request with the allowed methods. OPTIONS
// itself is always allowed.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Render(http.StatusNoContent, render.JSON{})
}

// OptionsGet is used for read-only endpoints like /version.
func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

// OptionsPost is used for the allocation endpoints.
func OptionsPost(c *gin.Context) {
	allow(c, http.MethodPost)
}

// OptionsGetPost is used for resource collections.
func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

// OptionsGetPatchDelete is used for single resources.
func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}

// OptionsGetDelete is used for /v1, which can be cleaned up.
func OptionsGetDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodDelete)
}
