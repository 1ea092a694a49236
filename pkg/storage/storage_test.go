package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/echosight/echosight/pkg/storage"
)

func TestNewCaptureKey(t *testing.T) {
	a := storage.NewCaptureKey()
	b := storage.NewCaptureKey()

	if !strings.HasPrefix(a, "captures/") || !strings.HasSuffix(a, ".jpg") {
		t.Errorf("unexpected key format: %s", a)
	}
	if a == b {
		t.Error("capture keys must be unique per cycle")
	}
}

func TestMockUpload(t *testing.T) {
	m := &storage.Mock{}
	ctx := context.Background()

	uri, err := m.Upload(ctx, "captures/test.jpg", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uri != "mock://captures/test.jpg" {
		t.Errorf("unexpected uri: %s", uri)
	}

	data, ok := m.Object("captures/test.jpg")
	if !ok || len(data) != 2 {
		t.Errorf("expected stored object, got %v %v", data, ok)
	}
}
