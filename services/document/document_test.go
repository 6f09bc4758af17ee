package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	documentRepo "complyhub/database/repository/document"
	"complyhub/models"
)

type fakePropertyRepo struct {
	properties map[string]models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[string]models.Property{
		"p1": {ID: "p1", UserID: "user-1"},
	}}
}

func (r *fakePropertyRepo) Create(ctx context.Context, p models.Property) (string, error) {
	r.properties[p.ID] = p
	return p.ID, nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, errors.New("property not found")
	}
	return &p, nil
}

func (r *fakePropertyRepo) GetByUserID(ctx context.Context, userID string) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.properties {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.properties {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, p *models.Property) error {
	r.properties[p.ID] = *p
	return nil
}

func (r *fakePropertyRepo) UpdateComplianceScore(ctx context.Context, id string, score int) error {
	return nil
}

func (r *fakePropertyRepo) DeleteByID(ctx context.Context, id string) error {
	delete(r.properties, id)
	return nil
}

type fakeDocumentRepo struct {
	folders map[string]models.DocumentFolder
	docs    map[string]models.Document
	nextID  int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		folders: make(map[string]models.DocumentFolder),
		docs:    make(map[string]models.Document),
	}
}

func (r *fakeDocumentRepo) CreateFolder(ctx context.Context, folder models.DocumentFolder) (string, error) {
	for _, f := range r.folders {
		if f.PropertyID == folder.PropertyID && f.Name == folder.Name {
			return "", &documentRepo.DuplicateFolderError{Name: folder.Name}
		}
	}
	r.nextID++
	folder.ID = fmt.Sprintf("folder-%d", r.nextID)
	r.folders[folder.ID] = folder
	return folder.ID, nil
}

func (r *fakeDocumentRepo) GetFoldersByPropertyID(ctx context.Context, propertyID string) ([]models.DocumentFolder, error) {
	var out []models.DocumentFolder
	for _, f := range r.folders {
		if f.PropertyID == propertyID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) GetFolderByID(ctx context.Context, id string) (*models.DocumentFolder, error) {
	f, ok := r.folders[id]
	if !ok {
		return nil, errors.New("folder not found")
	}
	return &f, nil
}

func (r *fakeDocumentRepo) DeleteFolder(ctx context.Context, id string) error {
	delete(r.folders, id)
	return nil
}

func (r *fakeDocumentRepo) CreateDocument(ctx context.Context, doc models.Document) (string, error) {
	r.nextID++
	doc.ID = fmt.Sprintf("doc-%d", r.nextID)
	r.docs[doc.ID] = doc
	return doc.ID, nil
}

func (r *fakeDocumentRepo) GetDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return &d, nil
}

func (r *fakeDocumentRepo) GetDocumentsByFolderID(ctx context.Context, folderID string) ([]models.Document, error) {
	var out []models.Document
	for _, d := range r.docs {
		if d.FolderID == folderID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) GetDocumentsByPropertyID(ctx context.Context, propertyID string) ([]models.Document, error) {
	var out []models.Document
	for _, d := range r.docs {
		if d.PropertyID == propertyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) DeleteDocument(ctx context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

// fakeStorage fails uploads for file paths containing "bad".
type fakeStorage struct {
	uploads []string
	deleted []string
}

func (s *fakeStorage) Upload(ctx context.Context, localFilePath, storagePath string) (string, string, error) {
	if strings.Contains(localFilePath, "bad") {
		return "", "", errors.New("upstream rejected the file")
	}
	s.uploads = append(s.uploads, storagePath)
	return storagePath, "https://cdn.example.com/" + storagePath, nil
}

func (s *fakeStorage) DownloadURL(ctx context.Context, storagePath string) (string, error) {
	return "https://cdn.example.com/" + storagePath, nil
}

func (s *fakeStorage) Delete(ctx context.Context, storagePath string) error {
	s.deleted = append(s.deleted, storagePath)
	return nil
}

func docOwner() *models.User {
	return &models.User{ID: "user-1", Role: models.RoleOwner}
}

func newDocumentTestService() (*DefaultDocumentService, *fakeStorage) {
	st := &fakeStorage{}
	return &DefaultDocumentService{
		Repo:         newFakeDocumentRepo(),
		PropertyRepo: newFakePropertyRepo(),
		Storage:      st,
		Logger:       zap.NewNop(),
	}, st
}

func TestCreateFolderDuplicateNameIsTypedConflict(t *testing.T) {
	svc, _ := newDocumentTestService()
	ctx := context.Background()

	_, err := svc.CreateFolder(ctx, docOwner(), "p1", "Certificates")
	require.NoError(t, err)

	_, err = svc.CreateFolder(ctx, docOwner(), "p1", "Certificates")
	require.Error(t, err)
	var dup *documentRepo.DuplicateFolderError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Certificates", dup.Name)
}

func TestCreateFolderSameNameOnOtherProperty(t *testing.T) {
	svc, _ := newDocumentTestService()
	ctx := context.Background()
	svc.PropertyRepo.(*fakePropertyRepo).properties["p2"] = models.Property{ID: "p2", UserID: "user-1"}

	_, err := svc.CreateFolder(ctx, docOwner(), "p1", "Certificates")
	require.NoError(t, err)
	_, err = svc.CreateFolder(ctx, docOwner(), "p2", "Certificates")
	assert.NoError(t, err)
}

func TestUploadDocumentsContinuesAfterFailure(t *testing.T) {
	svc, st := newDocumentTestService()
	ctx := context.Background()

	folder, err := svc.CreateFolder(ctx, docOwner(), "p1", "Certificates")
	require.NoError(t, err)

	results, err := svc.UploadDocuments(ctx, docOwner(), "p1", folder.ID, []FileUpload{
		{Name: "eicr.pdf", TempPath: "/tmp/eicr.pdf"},
		{Name: "broken.pdf", TempPath: "/tmp/bad-broken.pdf"},
		{Name: "gas-safety.pdf", TempPath: "/tmp/gas-safety.pdf"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].Document)
	assert.Empty(t, results[0].Error)

	assert.Nil(t, results[1].Document)
	assert.Contains(t, results[1].Error, "broken.pdf")

	// The failure in the middle does not stop the third file.
	assert.NotNil(t, results[2].Document)
	assert.Len(t, st.uploads, 2)
}

func TestUploadDocumentsStoragePathShape(t *testing.T) {
	svc, st := newDocumentTestService()
	ctx := context.Background()

	folder, err := svc.CreateFolder(ctx, docOwner(), "p1", "Certificates")
	require.NoError(t, err)

	results, err := svc.UploadDocuments(ctx, docOwner(), "p1", folder.ID, []FileUpload{
		{Name: "eicr.pdf", TempPath: "/tmp/eicr.pdf"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, st.uploads, 1)

	assert.True(t, strings.HasPrefix(st.uploads[0], "user-1/p1/"))
	assert.True(t, strings.HasSuffix(st.uploads[0], ".pdf"))
}
