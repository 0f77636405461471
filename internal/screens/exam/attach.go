package exam

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/session"
)

// Media files larger than this are not attached; providers reject
// oversized payloads anyway.
const maxAttachmentBytes = 8 << 20

var imageMIMEs = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

var audioMIMEs = map[string]string{
	".webm": "audio/webm",
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
}

// attachAnswerFile loads the answer text as a media file when the
// question asks for a drawing or a recording and the text names an
// existing file of a recognized type. Plain text answers pass through
// untouched.
func attachAnswerFile(ans *session.Answer, kind catalog.InputKind, text string) {
	if kind != catalog.InputDrawing && kind != catalog.InputAudio {
		return
	}

	ext := strings.ToLower(filepath.Ext(text))
	var mime string
	var ok bool
	switch kind {
	case catalog.InputDrawing:
		mime, ok = imageMIMEs[ext]
	case catalog.InputAudio:
		mime, ok = audioMIMEs[ext]
	}
	if !ok {
		return
	}

	info, err := os.Stat(text)
	if err != nil || info.IsDir() || info.Size() > maxAttachmentBytes {
		return
	}
	data, err := os.ReadFile(text)
	if err != nil {
		return
	}

	switch kind {
	case catalog.InputDrawing:
		ans.Image = data
		ans.ImageMIME = mime
	case catalog.InputAudio:
		ans.Audio = data
		ans.AudioMIME = mime
	}
}
