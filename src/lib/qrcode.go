package lib

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/yeqown/go-qrcode"
)

// SaveQRCode renders text as a JPEG QR code under dir and returns the file path.
func SaveQRCode(dir string, name string, text string) (string, error) {
	qrc, err := qrcode.New(text)
	if err != nil {
		log.Printf("Could not create qrcode: %s\n", err.Error())
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filepath := path.Join(dir, fmt.Sprintf("%s.jpeg", name))
	if err = qrc.Save(filepath); err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
		return "", err
	}
	return filepath, nil
}
