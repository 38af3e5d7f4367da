package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/empathyfirstmedia/model2openapi/internal/model"
	"github.com/empathyfirstmedia/model2openapi/internal/openapi"
)

// WriteDocument serializes doc as YAML and writes it to path, creating parent
// directories as needed. The write goes through a temp file and rename so an
// interrupted run never leaves a half-written document at path.
func WriteDocument(doc *openapi.Document, path string) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &model.Error{
				Code:    model.IOError,
				Message: fmt.Sprintf("create output directory %s: %v", dir, err),
				Path:    path,
				Cause:   err,
			}
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &model.Error{
			Code:    model.IOError,
			Message: fmt.Sprintf("write output file %s: %v", path, err),
			Path:    path,
			Cause:   err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &model.Error{
			Code:    model.IOError,
			Message: fmt.Sprintf("finalize output file %s: %v", path, err),
			Path:    path,
			Cause:   err,
		}
	}
	return nil
}
