package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ragi-1016/Geektwitter/internal/models"
	"github.com/Ragi-1016/Geektwitter/internal/services"
	"github.com/Ragi-1016/Geektwitter/pkg/utils"
)

var (
	msgDuplicateUsername = "that username is already registered, please choose another"

	msgsUnknownUser = []string{
		"username is incorrect!",
		"if unregistered, please create an account",
	}
	msgsWrongPassword = []string{
		"password is incorrect!",
		"if you forgot your password, re-create your account",
	}
)

type AuthHandler struct {
	db       *gorm.DB
	sessions *services.SessionService
	log      *zap.Logger
}

func NewAuthHandler(db *gorm.DB, sessions *services.SessionService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		db:       db,
		sessions: sessions,
		log:      log,
	}
}

// Top renders the login view unconditionally.
func (h *AuthHandler) Top(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var existing models.User
	err := h.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"messages": []string{msgDuplicateUsername},
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error("signup: username lookup failed", zap.Error(err))
		c.HTML(http.StatusOK, "signup.html", gin.H{})
		return
	}

	digest, err := utils.HashPassword(password)
	if err != nil {
		h.log.Error("signup: password hash failed", zap.Error(err))
		c.HTML(http.StatusOK, "signup.html", gin.H{})
		return
	}

	user := models.User{
		Username: username,
		Password: digest,
	}
	if err := h.db.Create(&user).Error; err != nil {
		// A concurrent signup with the same name lands here: the unique
		// index rejects the insert. The form is shown again without a
		// message, same as the check-then-insert race always behaved.
		h.log.Warn("signup: insert rejected", zap.String("username", username), zap.Error(err))
		c.HTML(http.StatusOK, "signup.html", gin.H{})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login verifies credentials and establishes the session. Unknown
// usernames and unexpected lookup failures show the same message set on
// purpose; they are only told apart in the log.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user models.User
	err := h.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Error("login: user lookup failed", zap.Error(err))
		}
		c.HTML(http.StatusOK, "login.html", gin.H{"messages": msgsUnknownUser})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		c.HTML(http.StatusOK, "login.html", gin.H{"messages": msgsWrongPassword})
		return
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		h.log.Error("login: session create failed", zap.Error(err))
		c.HTML(http.StatusOK, "login.html", gin.H{"messages": msgsUnknownUser})
		return
	}

	c.Redirect(http.StatusFound, "/index")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c)
	c.Redirect(http.StatusFound, "/login")
}
