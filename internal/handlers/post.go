package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ragi-1016/Geektwitter/internal/models"
)

type PostHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPostHandler(db *gorm.DB, log *zap.Logger) *PostHandler {
	return &PostHandler{db: db, log: log}
}

// Index lists posts. A plain GET returns everything in storage order; a
// POST orders by creation time descending and, when the search field is
// non-empty, narrows to posts whose title or body contains the text.
func (h *PostHandler) Index(c *gin.Context) {
	var posts []models.Post
	var err error

	if c.Request.Method == http.MethodPost {
		search := c.PostForm("search")
		query := h.db.Order("created_at DESC")
		if search != "" {
			pattern := "%" + search + "%"
			query = query.Where("title LIKE ? OR body LIKE ?", pattern, pattern)
		}
		err = query.Find(&posts).Error
	} else {
		err = h.db.Find(&posts).Error
	}

	if err != nil {
		h.log.Error("index: post listing failed", zap.Error(err))
		posts = nil
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"posts": posts})
}

func (h *PostHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new.html", gin.H{})
}

func (h *PostHandler) Create(c *gin.Context) {
	post := models.Post{
		Title:     c.PostForm("title"),
		Body:      c.PostForm("body"),
		CreatedAt: models.NowJST(),
	}

	if err := h.db.Create(&post).Error; err != nil {
		h.log.Error("create: post insert failed", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/index")
}

func (h *PostHandler) EditForm(c *gin.Context) {
	post, ok := h.postByID(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"post": post})
}

// Update rewrites title and body in place. CreatedAt stays as stamped at
// creation.
func (h *PostHandler) Update(c *gin.Context) {
	post, ok := h.postByID(c)
	if !ok {
		return
	}

	err := h.db.Model(&post).Updates(map[string]interface{}{
		"title": c.PostForm("title"),
		"body":  c.PostForm("body"),
	}).Error
	if err != nil {
		h.log.Error("edit: post update failed", zap.Uint("id", post.ID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/index")
}

// Delete removes a post. A missing id is a no-op redirect rather than an
// error.
func (h *PostHandler) Delete(c *gin.Context) {
	post, ok := h.postByID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&post).Error; err != nil {
		h.log.Error("delete: post delete failed", zap.Uint("id", post.ID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/index")
}

// postByID resolves the :id path segment. The segment must parse as an
// integer before it reaches the database; anything else is treated the
// same as a missing post and redirected to /index.
func (h *PostHandler) postByID(c *gin.Context) (models.Post, bool) {
	var post models.Post

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/index")
		return post, false
	}

	if err := h.db.First(&post, uint(id)).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Error("post lookup failed", zap.Uint64("id", id), zap.Error(err))
		}
		c.Redirect(http.StatusFound, "/index")
		return post, false
	}
	return post, true
}
