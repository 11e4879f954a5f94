package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/middlewares"
	"github.com/yeremiapane/fudr-web/models"
	"github.com/yeremiapane/fudr-web/services"
	"github.com/yeremiapane/fudr-web/utils"
)

type AuthController struct {
	Auth     services.Authenticator
	Sessions *middlewares.SessionManager
}

func NewAuthController(auth services.Authenticator, sessions *middlewares.SessionManager) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions}
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	render(c, ws, http.StatusOK, "login.gohtml", "Sign in", nil)
}

// Login -> tukar email/password dengan access token, simpan di sesi
func (ac *AuthController) Login(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		ws.Lock()
		defer ws.Unlock()
		ws.AddFlash(services.FlashError, "Email and password are required.")
		render(c, ws, http.StatusBadRequest, "login.gohtml", "Sign in", gin.H{"Email": form.Email})
		return
	}

	token, err := ac.Auth.Login(c.Request.Context(), models.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		ws.Lock()
		defer ws.Unlock()
		code := http.StatusBadGateway
		msg := "Login failed. Please try again."
		if services.IsUnauthorized(err) {
			code = http.StatusUnauthorized
			msg = "Wrong email or password."
		}
		ws.AddFlash(services.FlashError, msg)
		render(c, ws, code, "login.gohtml", "Sign in", gin.H{"Email": form.Email})
		return
	}

	if err := ac.Sessions.SignIn(c, ws, token); err != nil {
		utils.ErrorLogger.Printf("Error storing credential for workspace %s: %v", ws.ID(), err)
		ws.Lock()
		defer ws.Unlock()
		ws.AddFlash(services.FlashError, "Login failed. Please try again.")
		render(c, ws, http.StatusInternalServerError, "login.gohtml", "Sign in", gin.H{"Email": form.Email})
		return
	}

	utils.InfoLogger.Printf("Workspace %s signed in", ws.ID())
	redirect(c, "/menu")
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	render(c, ws, http.StatusOK, "register.gohtml", "Register", nil)
}

// Register creates the account and then signs the new user in with the
// same credentials. When that sign-in fails the user is sent to /login.
func (ac *AuthController) Register(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)

	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		ws.Lock()
		defer ws.Unlock()
		ws.AddFlash(services.FlashError, "All fields are required.")
		render(c, ws, http.StatusBadRequest, "register.gohtml", "Register", gin.H{"Username": form.Username, "Email": form.Email})
		return
	}

	ctx := c.Request.Context()
	err := ac.Auth.Register(ctx, models.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		ws.Lock()
		defer ws.Unlock()
		ws.AddFlash(services.FlashError, "Registration failed.")
		render(c, ws, http.StatusBadGateway, "register.gohtml", "Register", gin.H{"Username": form.Username, "Email": form.Email})
		return
	}

	token, err := ac.Auth.Login(ctx, models.LoginRequest{Email: form.Email, Password: form.Password})
	if err == nil {
		err = ac.Sessions.SignIn(c, ws, token)
	}

	ws.Lock()
	defer ws.Unlock()
	ws.AddFlash(services.FlashSuccess, "Registration successful!")
	if err != nil {
		utils.InfoLogger.Printf("Sign-in after registration failed for workspace %s: %v", ws.ID(), err)
		redirect(c, "/login")
		return
	}
	redirect(c, "/menu")
}
