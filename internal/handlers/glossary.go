package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fairwaydreams/fairway-backend/internal/content"
)

type GlossaryHandler struct{}

func NewGlossaryHandler() *GlossaryHandler {
	return &GlossaryHandler{}
}

func (gh *GlossaryHandler) Glossary(c *gin.Context) {
	RespondOK(c, gin.H{"glossary": content.Glossary()})
}
