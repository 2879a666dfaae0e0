package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/richardlehane/mscfb"
)

// Container is the outer file format of a document.
type Container string

const (
	// ContainerUnknown is anything that is neither a zip archive nor a
	// compound file.
	ContainerUnknown Container = "unknown"
	// ContainerOOXML is a plain xlsx zip archive (magic: 504b0304).
	ContainerOOXML Container = "ooxml"
	// ContainerCFB is an OLE2 compound file (magic: d0cf11e0a1b11ae1). Password
	// protected xlsx documents are stored this way.
	ContainerCFB Container = "cfb"
)

var (
	zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}
	cfbMagic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

// DetectContainer inspects the leading bytes of b.
func DetectContainer(b []byte) Container {
	switch {
	case bytes.HasPrefix(b, cfbMagic):
		return ContainerCFB
	case bytes.HasPrefix(b, zipMagic):
		return ContainerOOXML
	default:
		return ContainerUnknown
	}
}

// Streams lists the stream and storage names of a compound file, in
// directory order. An encrypted xlsx holds at least EncryptionInfo and
// EncryptedPackage.
func Streams(b []byte) ([]string, error) {
	doc, err := mscfb.New(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var names []string
	for entry, err := doc.Next(); ; entry, err = doc.Next() {
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, entry.Name)
	}
	return names, nil
}

// IsEncryptedPackage reports whether b is a compound file carrying an
// encrypted xlsx payload.
func IsEncryptedPackage(b []byte) bool {
	if DetectContainer(b) != ContainerCFB {
		return false
	}
	names, err := Streams(b)
	if err != nil {
		return false
	}
	var info, pkg bool
	for _, name := range names {
		switch name {
		case "EncryptionInfo":
			info = true
		case "EncryptedPackage":
			pkg = true
		}
	}
	return info && pkg
}
