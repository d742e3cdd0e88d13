package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikios34/storefront-backend/messenger"
	"github.com/mikios34/storefront-backend/middleware"
	"go.uber.org/zap"
)

// Pages holds what every HTML handler needs: the flash store and a logger.
type Pages struct {
	flash  messenger.Store
	logger *zap.Logger
}

// addFlash queues a message for the next rendered page of this session.
func (p Pages) addFlash(c *gin.Context, msg messenger.Message) {
	if err := p.flash.Add(c.Request.Context(), c.GetString("sid"), msg); err != nil {
		p.logger.Warn("flash: add failed", zap.String("sid", c.GetString("sid")), zap.Error(err))
	}
}

// render writes an HTML page with the common layout data filled in.
func (p Pages) render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	if ident, ok := middleware.CurrentUser(c); ok {
		data["User"] = ident
	}
	msgs, err := p.flash.Pop(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		p.logger.Warn("flash: pop failed", zap.String("sid", c.GetString("sid")), zap.Error(err))
	}
	data["Messages"] = msgs
	c.HTML(status, name, data)
}

func (p Pages) renderError(c *gin.Context, status int, detail string) {
	p.render(c, status, "error.html", http.StatusText(status), gin.H{"Detail": detail})
}

func NewPages(flash messenger.Store, logger *zap.Logger) Pages {
	return Pages{flash: flash, logger: logger}
}
