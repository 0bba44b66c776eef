package cloudinary

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBuildOptimizedImageURL(t *testing.T) {
	url := BuildOptimizedImageURL("demo", "anima/gallery/img_abc", 1200)
	want := "https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_1200,c_fill/anima/gallery/img_abc"
	if url != want {
		t.Fatalf("got %q, want %q", url, want)
	}
}

func TestProfilesCoverSiteImageSlots(t *testing.T) {
	for _, name := range []string{"hero", "gallery", "avatar", "article", DefaultProfile} {
		p, ok := Profiles[name]
		if !ok {
			t.Fatalf("missing profile %q", name)
		}
		if p.Width <= 0 || p.ThumbWidth <= 0 || p.ThumbWidth >= p.Width {
			t.Fatalf("profile %q has bad dimensions: %+v", name, p)
		}
	}
}

func TestDisabledClient(t *testing.T) {
	c := NewDisabledClient()
	_, _, err := c.UploadImage(context.Background(), strings.NewReader("x"), "f", "id", "gallery")
	if !errors.Is(err, ErrUploadsDisabled) {
		t.Fatalf("expected ErrUploadsDisabled, got %v", err)
	}
	if err := c.DeleteByPublicID(context.Background(), "id"); !errors.Is(err, ErrUploadsDisabled) {
		t.Fatalf("expected ErrUploadsDisabled, got %v", err)
	}
}
