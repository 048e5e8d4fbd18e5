package file

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daycare/backend/foundation/web"
)

const staticsDir = "./statics"

type Controller struct {
	*web.App
}

type onlyFilesFS struct {
	http.FileSystem
}

func NewController(app *web.App) *Controller {
	return &Controller{app}
}

// File serves generated artifacts (badge images, badge sheets) from the
// statics directory without allowing directory listings.
func (cf Controller) File(c *gin.Context) {
	fs := gin.Dir(staticsDir, false)
	if _, noListing := fs.(*onlyFilesFS); noListing {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}

	file := c.Param("filepath")

	f, err := fs.Open(file)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]any{
			"error":  "file not found",
			"status": false,
		})
		return
	}
	f.Close()

	http.ServeFile(c.Writer, c.Request, staticsDir+file)
}
