package serialization

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const libraryVersion = "0.1.0"

// Writer writes checkpoints in .ncr format.
type Writer struct {
	w io.Writer
}

// NewWriter creates a writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes tensors, in order, with optional metadata.
//
// Names are validated before anything is written.
func (w *Writer) Write(tensors []Tensor, metadata map[string]string) error {
	header := Header{
		FormatVersion: FormatVersion,
		CreatedBy:     "neuroncore " + libraryVersion,
		Tensors:       make([]TensorMeta, 0, len(tensors)),
		Metadata:      metadata,
	}

	var data []byte
	seen := make(map[string]bool, len(tensors))
	for _, t := range tensors {
		if err := ValidateTensorName(t.Name); err != nil {
			return err
		}
		if seen[t.Name] {
			return &ValidationError{Err: ErrDuplicateTensor, Tensor: t.Name, Details: "name appears twice"}
		}
		seen[t.Name] = true

		meta := TensorMeta{
			Name:   t.Name,
			Shape:  append([]int(nil), t.Shape...),
			Offset: int64(len(data)),
			Size:   int64(len(t.Data) * bytesPerElement),
		}
		if err := ValidateTensorMeta(meta); err != nil {
			return err
		}
		header.Tensors = append(header.Tensors, meta)
		data = encodeFloat32s(data, t.Data)
	}

	sum := ComputeChecksum(data)
	header.Checksum = hex.EncodeToString(sum[:])

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	fixed := make([]byte, 0, FixedHeaderSize)
	fixed = append(fixed, MagicBytes...)
	fixed = binary.LittleEndian.AppendUint32(fixed, FormatVersion)
	fixed = binary.LittleEndian.AppendUint64(fixed, uint64(len(headerJSON)))

	if _, err := w.w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// WriteFile writes a checkpoint to path, replacing any existing file.
func WriteFile(path string, tensors []Tensor, metadata map[string]string) error {
	//nolint:gosec // G304: path is chosen by the caller
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := NewWriter(file).Write(tensors, metadata); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
