package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processStartReq binds and validates the start session request body. An
// empty body starts a default pomodoro session.
func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list sessions query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
