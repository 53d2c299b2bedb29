package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing form writer: %v", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("parsing form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["photo"][0]
}

func TestSaveFileWithPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := newTestFileHeader(t, "party.jpg", "fake image bytes")

	url, err := storage.SaveFileWithPath(header, "galleries/7")
	if err != nil {
		t.Fatalf("SaveFileWithPath: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/galleries/7/") {
		t.Errorf("url: got %q, want /uploads/galleries/7/ prefix", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url: got %q, want the original extension preserved", url)
	}
	if strings.Contains(url, "party") {
		t.Errorf("url: got %q, original filename should be replaced", url)
	}

	stored := filepath.Join(dir, "galleries", "7", filepath.Base(url))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content: got %q, want %q", data, "fake image bytes")
	}
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := newTestFileHeader(t, "cover.png", "png bytes")
	url, err := storage.SaveFileWithPath(header, "galleries/1")
	if err != nil {
		t.Fatalf("SaveFileWithPath: %v", err)
	}

	if err := storage.DeleteFile(url); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}

	stored := filepath.Join(dir, "galleries", "1", filepath.Base(url))
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Errorf("expected the file to be gone, stat returned %v", err)
	}

	// Deleting an already missing file is not an error.
	if err := storage.DeleteFile(url); err != nil {
		t.Errorf("DeleteFile on a missing file: %v", err)
	}
}
