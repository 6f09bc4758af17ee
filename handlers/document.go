package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"complyhub/services/document"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler exposes folder and document endpoints.
type DocumentHandler struct {
	Svc document.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler instance.
func NewDocumentHandler(svc document.DocumentService) *DocumentHandler {
	return &DocumentHandler{Svc: svc}
}

// CreateFolderHandler adds a document folder to a property. Folder
// names are unique per property; a clash returns 409.
func (h *DocumentHandler) CreateFolderHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	folder, err := h.Svc.CreateFolder(c, usr, c.Param("id"), input.Name)
	if err != nil {
		respondDocumentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// ListFoldersHandler returns a property's document folders.
func (h *DocumentHandler) ListFoldersHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	folders, err := h.Svc.ListFolders(c, usr, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// UploadDocumentsHandler accepts a multipart batch and uploads the
// files one at a time. Each file reports its own outcome; one failure
// does not abort the rest.
func (h *DocumentHandler) UploadDocumentsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	tempDir := os.TempDir()
	var uploads []document.FileUpload
	for _, fh := range fileHeaders {
		// A unique temp name keeps concurrent uploads of the same
		// filename from clobbering each other.
		tempName := uuid.New().String() + filepath.Ext(fh.Filename)
		tempFilePath := filepath.Join(tempDir, tempName)
		if err := c.SaveUploadedFile(fh, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
			return
		}
		defer os.Remove(tempFilePath)
		uploads = append(uploads, document.FileUpload{
			Name:      fh.Filename,
			TempPath:  tempFilePath,
			SizeBytes: fh.Size,
		})
	}

	results, err := h.Svc.UploadDocuments(c, usr, c.Param("id"), c.Param("folderID"), uploads)
	if err != nil {
		respondDocumentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ListDocumentsHandler returns the documents in a folder.
func (h *DocumentHandler) ListDocumentsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	docs, err := h.Svc.ListDocuments(c, usr, c.Param("id"), c.Param("folderID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// DownloadURLHandler returns a public URL for a stored document.
func (h *DocumentHandler) DownloadURLHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	url, err := h.Svc.DownloadURL(c, usr, c.Param("documentID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteDocumentHandler removes a document record and purges the
// stored file.
func (h *DocumentHandler) DeleteDocumentHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteDocument(c, usr, c.Param("documentID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}
