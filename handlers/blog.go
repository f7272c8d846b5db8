package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/hawkeyemusic/hawkeyebackend/models"
	"github.com/hawkeyemusic/hawkeyebackend/repository"
)

type BlogHandler struct {
	Posts repository.BlogPostRepositoryInterface
}

func (bh *BlogHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := bh.Posts.ListAll()
	if err != nil {
		log.Printf("Error listing blog posts: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve blog posts"})
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (bh *BlogHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "post_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid blog post ID"})
		return
	}

	post, err := bh.Posts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Blog post not found"})
		} else {
			log.Printf("Error getting blog post %d: %v", id, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve blog post"})
		}
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (bh *BlogHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string  `json:"title"`
		Content     string  `json:"content"`
		Excerpt     string  `json:"excerpt"`
		Category    string  `json:"category"`
		ImageURL    *string `json:"image_url"`
		PublishDate string  `json:"publish_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}

	if req.Title == "" || req.Content == "" || req.Excerpt == "" || req.Category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields: title, content, excerpt, and category"})
		return
	}
	if req.PublishDate == "" {
		req.PublishDate = time.Now().UTC().Format("2006-01-02")
	}

	post := &models.BlogPost{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		PublishDate: req.PublishDate,
	}
	if err := bh.Posts.Create(post); err != nil {
		log.Printf("Error creating blog post '%s': %v", req.Title, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create blog post"})
		return
	}
	writeJSON(w, http.StatusCreated, post)
}
