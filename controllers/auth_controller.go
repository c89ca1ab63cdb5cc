package controllers

import (
	"errors"
	"net/http"

	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

func LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		middlewares.AddFlash(c, "danger", "Please provide both username and password")
		render(c, http.StatusOK, "login.html", nil)
		return
	}

	user, err := services.AuthenticateUser(username, password)
	if err != nil {
		middlewares.AddFlash(c, "danger", "Invalid username or password")
		render(c, http.StatusOK, "login.html", nil)
		return
	}

	middlewares.SetSessionUser(c, user.ID, user.Username)
	middlewares.AddFlash(c, "success", "Login successful!")
	c.Redirect(http.StatusFound, "/dashboard")
}

func RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

func Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")
	fullName := c.PostForm("full_name")

	if username == "" || email == "" || password == "" {
		middlewares.AddFlash(c, "danger", "Please fill in all required fields")
		render(c, http.StatusOK, "register.html", nil)
		return
	}
	if password != confirm {
		middlewares.AddFlash(c, "danger", "Passwords do not match")
		render(c, http.StatusOK, "register.html", nil)
		return
	}

	_, err := services.RegisterUser(username, email, password, fullName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			middlewares.AddFlash(c, "danger", "Username already exists")
		case errors.Is(err, services.ErrEmailTaken):
			middlewares.AddFlash(c, "danger", "Email already registered")
		default:
			middlewares.AddFlash(c, "danger", "Registration failed, please try again")
		}
		render(c, http.StatusOK, "register.html", nil)
		return
	}

	middlewares.AddFlash(c, "success", "Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

func Logout(c *gin.Context) {
	middlewares.ClearSessionUser(c)
	middlewares.AddFlash(c, "info", "You have been logged out")
	c.Redirect(http.StatusFound, "/")
}

type tokenInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// APILogin issues a bearer token for non-browser clients.
func APILogin(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
