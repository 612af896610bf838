package onepuxzip

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	onepuxdomain "github.com/sleroq/onepux-to-csv/internal/domain/onepux"
)

const payloadName = "export.data"

var (
	ErrInputNotFound     = errors.New("input file not found")
	ErrPayloadMissing    = errors.New("export.data not found in archive")
	ErrMalformedDocument = errors.New("malformed export document")
)

// ReadExport opens a .1pux archive and decodes its export.data payload.
func ReadExport(inputPath string) (onepuxdomain.Export, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return onepuxdomain.Export{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return onepuxdomain.Export{}, fmt.Errorf("stat %s: %w", inputPath, err)
	}
	if info.IsDir() {
		return onepuxdomain.Export{}, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, inputPath)
	}

	zr, err := zip.OpenReader(inputPath)
	if err != nil {
		return onepuxdomain.Export{}, fmt.Errorf("%w: open %s: %w", ErrPayloadMissing, inputPath, err)
	}
	defer zr.Close()

	payload := findPayload(zr.File)
	if payload == nil {
		return onepuxdomain.Export{}, fmt.Errorf("%w: %s", ErrPayloadMissing, inputPath)
	}

	rc, err := payload.Open()
	if err != nil {
		return onepuxdomain.Export{}, fmt.Errorf("open %s: %w", payload.Name, err)
	}
	defer rc.Close()

	return DecodeExport(rc)
}

// DecodeExport decodes an export.data document.
func DecodeExport(r io.Reader) (onepuxdomain.Export, error) {
	var export onepuxdomain.Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return onepuxdomain.Export{}, fmt.Errorf("%w: decode %s: %w", ErrMalformedDocument, payloadName, err)
	}
	return export, nil
}

func findPayload(files []*zip.File) *zip.File {
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if strings.HasSuffix(name, payloadName) {
			return f
		}
	}
	return nil
}
