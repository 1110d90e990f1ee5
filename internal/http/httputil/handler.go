package httputil

import "github.com/gin-gonic/gin"

// IHttpHandler mounts a feature's routes under Root() in each access group.
type IHttpHandler interface {
	Root() string
	SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup)
}
