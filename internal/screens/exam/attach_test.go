package exam

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/session"
)

func TestAttachAnswerFile(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "clock.png")
	if err := os.WriteFile(img, []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	audio := filepath.Join(dir, "recall.wav")
	if err := os.WriteFile(audio, []byte("wav-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("drawing path loads image", func(t *testing.T) {
		ans := session.Answer{Text: img}
		attachAnswerFile(&ans, catalog.InputDrawing, img)
		if !bytes.Equal(ans.Image, []byte("png-bytes")) {
			t.Fatalf("image not loaded: %q", ans.Image)
		}
		if ans.ImageMIME != "image/png" {
			t.Fatalf("expected image/png, got %q", ans.ImageMIME)
		}
	})

	t.Run("audio path loads clip", func(t *testing.T) {
		ans := session.Answer{Text: audio}
		attachAnswerFile(&ans, catalog.InputAudio, audio)
		if !bytes.Equal(ans.Audio, []byte("wav-bytes")) {
			t.Fatalf("audio not loaded: %q", ans.Audio)
		}
		if ans.AudioMIME != "audio/wav" {
			t.Fatalf("expected audio/wav, got %q", ans.AudioMIME)
		}
	})

	t.Run("plain text passes through", func(t *testing.T) {
		ans := session.Answer{Text: "画了一个表盘"}
		attachAnswerFile(&ans, catalog.InputDrawing, "画了一个表盘")
		if ans.Image != nil || ans.ImageMIME != "" {
			t.Fatalf("unexpected attachment for plain text: %+v", ans)
		}
	})

	t.Run("missing file passes through", func(t *testing.T) {
		missing := filepath.Join(dir, "nope.png")
		ans := session.Answer{Text: missing}
		attachAnswerFile(&ans, catalog.InputDrawing, missing)
		if ans.Image != nil {
			t.Fatal("expected no attachment for missing file")
		}
	})

	t.Run("text question never attaches", func(t *testing.T) {
		ans := session.Answer{Text: img}
		attachAnswerFile(&ans, catalog.InputText, img)
		if ans.Image != nil {
			t.Fatal("expected no attachment for text question")
		}
	})
}
