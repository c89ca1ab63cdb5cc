package controllers

import (
	"strconv"

	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML, injecting pending flash messages and the signed-in
// username so every template can show them.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = middlewares.TakeFlashes(c)
	if username, ok := c.Get("username"); ok {
		data["Username"] = username
	} else {
		s := middlewares.Session(c)
		if u, ok := s.Values["username"].(string); ok {
			data["Username"] = u
		}
	}
	c.HTML(status, name, data)
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func formFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.PostForm(name), 64)
	if err != nil {
		return 0
	}
	return v
}

func formInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.PostForm(name))
	if err != nil {
		return 0
	}
	return v
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// isXHR mirrors the X-Requested-With convention used by the frontend's
// fetch calls on pages that also accept plain form posts.
func isXHR(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
