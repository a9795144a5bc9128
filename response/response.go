// Package response renders the API envelope: {success, data|error, meta}.
package response

import "github.com/gin-gonic/gin"

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    gin.H       `json:"meta,omitempty"`
}

func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func OKWithMeta(c *gin.Context, status int, data interface{}, meta gin.H) {
	c.JSON(status, Envelope{Success: true, Data: data, Meta: meta})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Error: message})
}
