package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyhub/models"
	"complyhub/services/document"
)

// capturingDocumentService records the uploads handed to it so tests
// can inspect what the handler staged. Temp file contents are read
// here because the handler cleans the files up once it returns.
type capturingDocumentService struct {
	uploads  []document.FileUpload
	contents []string
}

func (s *capturingDocumentService) CreateFolder(ctx context.Context, actor *models.User, propertyID, name string) (*models.DocumentFolder, error) {
	return &models.DocumentFolder{PropertyID: propertyID, Name: name}, nil
}

func (s *capturingDocumentService) ListFolders(ctx context.Context, actor *models.User, propertyID string) ([]models.DocumentFolder, error) {
	return nil, nil
}

func (s *capturingDocumentService) UploadDocuments(ctx context.Context, actor *models.User, propertyID, folderID string, files []document.FileUpload) ([]models.DocumentUploadResult, error) {
	s.uploads = files
	results := make([]models.DocumentUploadResult, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.TempPath)
		if err != nil {
			return nil, err
		}
		s.contents = append(s.contents, string(data))
		results = append(results, models.DocumentUploadResult{FileName: f.Name})
	}
	return results, nil
}

func (s *capturingDocumentService) ListDocuments(ctx context.Context, actor *models.User, propertyID, folderID string) ([]models.Document, error) {
	return nil, nil
}

func (s *capturingDocumentService) DownloadURL(ctx context.Context, actor *models.User, documentID string) (string, error) {
	return "", nil
}

func (s *capturingDocumentService) DeleteDocument(ctx context.Context, actor *models.User, documentID string) error {
	return nil
}

func multipartUploadRequest(t *testing.T, filenames []string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for i, name := range filenames {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(fmt.Sprintf("certificate body %d", i)))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadDocumentsHandlerSameFilenameGetsDistinctTempPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &capturingDocumentService{}
	h := NewDocumentHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = multipartUploadRequest(t, []string{"report.pdf", "report.pdf"})
	c.Params = gin.Params{
		{Key: "id", Value: "p1"},
		{Key: "folderID", Value: "f1"},
	}
	c.Set("currentUser", &models.User{ID: "user-1", Role: models.RoleOwner})

	h.UploadDocumentsHandler(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.uploads, 2)
	assert.Equal(t, "report.pdf", svc.uploads[0].Name)
	assert.Equal(t, "report.pdf", svc.uploads[1].Name)
	assert.NotEqual(t, svc.uploads[0].TempPath, svc.uploads[1].TempPath)

	// Neither staged file overwrote the other.
	assert.Equal(t, []string{"certificate body 0", "certificate body 1"}, svc.contents)
}
