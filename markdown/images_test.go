package markdown

import "testing"

func TestExtractImages(t *testing.T) {
	body := `Intro text.

![first image](/images/uploads/aaa.jpg)

More prose.

![second image](https://example.com/bbb.png "a caption")
`

	refs := ExtractImages(body)
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}

	if refs[0].Alt != "first image" {
		t.Errorf("refs[0].Alt = %q, want %q", refs[0].Alt, "first image")
	}
	if refs[0].URL != "/images/uploads/aaa.jpg" {
		t.Errorf("refs[0].URL = %q", refs[0].URL)
	}
	if refs[0].Caption != nil {
		t.Errorf("refs[0].Caption = %v, want nil", *refs[0].Caption)
	}

	if refs[1].Alt != "second image" {
		t.Errorf("refs[1].Alt = %q, want %q", refs[1].Alt, "second image")
	}
	if refs[1].URL != "https://example.com/bbb.png" {
		t.Errorf("refs[1].URL = %q", refs[1].URL)
	}
	if refs[1].Caption == nil || *refs[1].Caption != "a caption" {
		t.Errorf("refs[1].Caption = %v, want %q", refs[1].Caption, "a caption")
	}
}

func TestExtractImagesAdjacent(t *testing.T) {
	refs := ExtractImages(`![a](u "c")![b](v)`)
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	if refs[0].Caption == nil || *refs[0].Caption != "c" {
		t.Errorf("refs[0].Caption = %v, want %q", refs[0].Caption, "c")
	}
	if refs[1].URL != "v" {
		t.Errorf("refs[1].URL = %q, want %q", refs[1].URL, "v")
	}
	if refs[1].Caption != nil {
		t.Errorf("refs[1].Caption = %v, want nil", *refs[1].Caption)
	}
}

func TestExtractImagesEmptyAlt(t *testing.T) {
	refs := ExtractImages("![](/pic.png)")
	if len(refs) != 1 {
		t.Fatalf("got %d refs, want 1", len(refs))
	}
	if refs[0].Alt != "" {
		t.Errorf("Alt = %q, want empty", refs[0].Alt)
	}
}

func TestExtractImagesNone(t *testing.T) {
	if refs := ExtractImages("no images here, just [a link](/somewhere)"); refs != nil {
		t.Errorf("got %v, want nil", refs)
	}
	if refs := ExtractImages(""); refs != nil {
		t.Errorf("got %v, want nil", refs)
	}
}

func TestExtractImagesDocumentOrder(t *testing.T) {
	refs := ExtractImages("![z](/3.png) text ![a](/1.png) text ![m](/2.png)")
	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3", len(refs))
	}
	want := []string{"/3.png", "/1.png", "/2.png"}
	for i, url := range want {
		if refs[i].URL != url {
			t.Errorf("refs[%d].URL = %q, want %q", i, refs[i].URL, url)
		}
	}
}
