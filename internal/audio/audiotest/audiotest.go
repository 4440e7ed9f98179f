// Package audiotest writes MP3 fixtures for tests.
package audiotest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// Payload stands in for MPEG audio. It does not start with "ID3", so id3v2
// treats a file holding only the payload as untagged.
var Payload = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x64}, 256)

// corruptHeader is an ID3v2.2 header, a version id3v2 refuses to parse.
var corruptHeader = []byte{'I', 'D', '3', 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// Track describes the tag of a fixture file. Zero fields are not written.
type Track struct {
	Artist   string
	Title    string
	Album    string
	Pictures int

	// EmptyArtist writes a TPE1 frame even when Artist is "".
	EmptyArtist bool
}

// WriteUntagged creates dir/name holding only Payload.
func WriteUntagged(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Payload, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteCorrupt creates dir/name with a tag header id3v2 cannot parse.
func WriteCorrupt(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := append(append([]byte{}, corruptHeader...), Payload...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteTagged creates dir/name with an ID3v2.4 tag built from tr.
func WriteTagged(t testing.TB, dir, name string, tr Track) string {
	t.Helper()
	path := WriteUntagged(t, dir, name)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open fixture %s: %v", name, err)
	}
	defer tag.Close()

	if tr.Artist != "" || tr.EmptyArtist {
		tag.SetArtist(tr.Artist)
	}
	if tr.Title != "" {
		tag.SetTitle(tr.Title)
	}
	if tr.Album != "" {
		tag.SetAlbum(tr.Album)
	}
	for i := 0; i < tr.Pictures; i++ {
		tag.AddAttachedPicture(Picture(i))
	}

	if err := tag.Save(); err != nil {
		t.Fatalf("save fixture %s: %v", name, err)
	}
	return path
}

// Picture returns the i-th distinct attached picture frame. Frames differ
// in description so id3v2 keeps all of them.
func Picture(i int) id3v2.PictureFrame {
	return id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: fmt.Sprintf("Cover %d", i),
		Picture:     []byte{0xFF, 0xD8, 0xFF, 0xE0, byte(i)},
	}
}

// ReadTag parses the tag of the file at path.
func ReadTag(t testing.TB, path string) *id3v2.Tag {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	t.Cleanup(func() { tag.Close() })
	return tag
}
