package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestValidate_Image(t *testing.T) {
	ok := UploadInput{FileName: "avatar.png", ContentType: "image/png", Size: 1 << 20, Kind: KindImage}
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	tooBig := ok
	tooBig.Size = MaxImageSize + 1
	if err := Validate(tooBig); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	wrongType := ok
	wrongType.ContentType = "application/pdf"
	if err := Validate(wrongType); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestValidate_Document(t *testing.T) {
	for _, ct := range []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	} {
		in := UploadInput{FileName: "cv.pdf", ContentType: ct, Size: 2 << 20, Kind: KindDocument}
		if err := Validate(in); err != nil {
			t.Fatalf("content type %s: unexpected err: %v", ct, err)
		}
	}

	bad := UploadInput{FileName: "cv.exe", ContentType: "application/octet-stream", Size: 1024, Kind: KindDocument}
	if err := Validate(bad); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	huge := UploadInput{FileName: "cv.pdf", ContentType: "application/pdf", Size: MaxDocumentSize + 1, Kind: KindDocument}
	if err := Validate(huge); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUpload_ReturnsDownloadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/objects/document/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if !strings.HasSuffix(r.URL.Path, ".pdf") {
			t.Errorf("object name should keep the extension: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"downloadUrl":"https://files.example.com/abc.pdf"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	url, err := c.Upload(context.Background(), UploadInput{
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        4,
		Kind:        KindDocument,
		Body:        strings.NewReader("%PDF"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if url != "https://files.example.com/abc.pdf" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestUpload_RejectsInvalidBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Upload(context.Background(), UploadInput{
		FileName:    "huge.png",
		ContentType: "image/png",
		Size:        MaxImageSize + 1,
		Kind:        KindImage,
		Body:        strings.NewReader("x"),
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if called {
		t.Fatalf("no request must be made for an invalid file")
	}
}
